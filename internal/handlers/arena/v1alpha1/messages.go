package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/errors"
)

// FightRequest is the Fight payload
type FightRequest struct {
	Fighters  [2]entities.Snapshot `json:"fighters"`
	Nonce     string               `json:"nonce,omitempty"`
	SkipCache bool                 `json:"skip_cache,omitempty"`
}

// FightResponse is the Fight reply
type FightResponse struct {
	Result *battle.Result `json:"result"`
	Cached bool           `json:"cached"`
}

// GetBattleRequest is the GetBattle payload
type GetBattleRequest struct {
	Addresses [2]string `json:"addresses"`
	Nonce     string    `json:"nonce"`
}

// GetBattleResponse is the GetBattle reply; timestamps are unix seconds
type GetBattleResponse struct {
	Result    *battle.Result `json:"result"`
	CachedAt  int64          `json:"cached_at"`
	ExpiresAt int64          `json:"expires_at"`
}

// VerifyBattleRequest is the VerifyBattle payload
type VerifyBattleRequest struct {
	Result *battle.Result `json:"result"`
}

// VerifyBattleResponse is the VerifyBattle reply
type VerifyBattleResponse struct {
	Valid    bool           `json:"valid"`
	Mismatch string         `json:"mismatch,omitempty"`
	Expected *battle.Result `json:"expected"`
}

// ToStruct encodes a message as a Struct
func ToStruct(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := new(structpb.Struct)
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return out, nil
}

// FromStruct decodes a Struct into msg
func FromStruct(in *structpb.Struct, msg any) error {
	if in == nil {
		return errors.InvalidArgument("request body is required")
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}
