package codec

import (
	"sync"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/vocabulary"
)

// maxIndexed is the highest usable vocabulary index; 0xFFFF is the
// unknown/absent sentinel and never assigned to a concept.
const maxIndexed = 0xFFFF

// vocabIndex is the frozen concept-to-index mapping the compact format
// encodes against. Indices are positions in the vocabulary's sorted
// identifier sequence, so any two parties sharing the same vocabulary
// contents derive identical indices independently.
type vocabIndex struct {
	ids  []string
	byID map[string]uint16
}

var (
	indexOnce     sync.Once
	indexSnapshot *vocabIndex
)

// vocabularyIndex returns the process-lifetime index snapshot,
// building it from the vocabulary on first use. Concepts registered
// after the first compact encode or decode are not part of the
// snapshot and encode as the unknown sentinel.
func vocabularyIndex() (*vocabIndex, error) {
	indexOnce.Do(func() {
		ids := vocabulary.Identifiers()
		if len(ids) == 0 {
			return
		}
		idx := &vocabIndex{
			ids:  ids,
			byID: make(map[string]uint16, len(ids)),
		}
		for i, id := range ids {
			if i >= maxIndexed {
				// Overflow concepts stay unindexed and fall back to
				// the unknown sentinel.
				break
			}
			idx.byID[id] = uint16(i)
		}
		indexSnapshot = idx
	})

	if indexSnapshot == nil {
		return nil, errors.WrapEncoding(errors.ErrIndexUnavailable,
			"codec", "vocabularyIndex", "index construction")
	}
	return indexSnapshot, nil
}

// indexOf returns the compact index for a concept identifier.
func (v *vocabIndex) indexOf(id string) (uint16, bool) {
	idx, ok := v.byID[id]
	return idx, ok
}

// idAt returns the concept identifier at a compact index.
func (v *vocabIndex) idAt(idx uint16) (string, bool) {
	if int(idx) >= len(v.ids) || idx == maxIndexed {
		return "", false
	}
	return v.ids[idx], true
}
