// Package v1alpha1 serves the arena gRPC API
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wallet-arena/internal/errors"
	"github.com/KirkDiggler/wallet-arena/internal/orchestrators/arena"
)

// HandlerConfig holds dependencies for the arena handler
type HandlerConfig struct {
	ArenaService arena.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ArenaService == nil {
		return errors.InvalidArgument("arena service is required")
	}
	return nil
}

// Handler implements ArenaServiceServer
type Handler struct {
	arenaService arena.Service
}

var _ ArenaServiceServer = (*Handler)(nil)

// NewHandler creates a new arena handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		arenaService: cfg.ArenaService,
	}, nil
}

// Fight runs or fetches the battle described by the request
func (h *Handler) Fight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in FightRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.arenaService.Fight(ctx, &arena.FightInput{
		Fighters:  in.Fighters,
		Nonce:     in.Nonce,
		SkipCache: in.SkipCache,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reply(&FightResponse{Result: out.Result, Cached: out.Cached})
}

// GetBattle returns a previously fought battle
func (h *Handler) GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetBattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Nonce == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("nonce is required"))
	}

	out, err := h.arenaService.GetBattle(ctx, &arena.GetBattleInput{
		Addresses: in.Addresses,
		Nonce:     in.Nonce,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reply(&GetBattleResponse{
		Result:    out.Result,
		CachedAt:  out.CachedAt.Unix(),
		ExpiresAt: out.ExpiresAt.Unix(),
	})
}

// VerifyBattle replays a submitted result
func (h *Handler) VerifyBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in VerifyBattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Result == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("result is required"))
	}

	out, err := h.arenaService.VerifyBattle(ctx, &arena.VerifyBattleInput{Result: in.Result})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reply(&VerifyBattleResponse{
		Valid:    out.Valid,
		Mismatch: out.Mismatch,
		Expected: out.Expected,
	})
}

func reply(msg any) (*structpb.Struct, error) {
	st, err := ToStruct(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return st, nil
}
