package entities

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/wallet-arena/internal/errors"
)

// ParseSnapshotYAML decodes a single fighter document. Unknown keys are rejected
// so typos in stat names do not silently become zeroes.
func ParseSnapshotYAML(data []byte) (Snapshot, error) {
	var s Snapshot

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid fighter yaml")
	}

	s.Class = ClassID(strings.ToLower(strings.TrimSpace(string(s.Class))))
	return s, nil
}
