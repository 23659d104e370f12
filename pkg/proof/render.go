package proof

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
)

// Write renders an extracted proof to w, one numbered step per line in the
// usual refutation style:
//
//  1. P(a) [input]
//  4. Q(a) [resolution 1,2]
//  5. $false [resolution 3,4]
func Write(w io.Writer, sig *kernel.Signature, steps []Step) error {
	for _, s := range steps {
		ann := s.Rule.String()
		if len(s.Premises) > 0 {
			ids := make([]string, len(s.Premises))
			for i, p := range s.Premises {
				ids[i] = strconv.FormatUint(uint64(p), 10)
			}
			ann += " " + strings.Join(ids, ",")
		}
		if _, err := fmt.Fprintf(w, "%d. %s [%s]\n", s.ID, sig.UnitString(s.Unit), ann); err != nil {
			return err
		}
	}
	return nil
}

// Format renders an extracted proof to a string.
func Format(sig *kernel.Signature, steps []Step) string {
	var sb strings.Builder
	_ = Write(&sb, sig, steps)
	return sb.String()
}

type jsonStep struct {
	ID       uint32   `json:"id"`
	Content  string   `json:"content"`
	Rule     string   `json:"rule"`
	Input    string   `json:"input"`
	Premises []uint32 `json:"premises,omitempty"`
}

// RenderJSON renders an extracted proof as indented JSON.
func RenderJSON(sig *kernel.Signature, steps []Step) ([]byte, error) {
	out := make([]jsonStep, len(steps))
	for i, s := range steps {
		out[i] = jsonStep{
			ID:       s.ID,
			Content:  sig.UnitString(s.Unit),
			Rule:     s.Rule.String(),
			Input:    s.Input.String(),
			Premises: s.Premises,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
