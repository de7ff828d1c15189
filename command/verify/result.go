package verify

import (
	"bytes"
	"fmt"

	"github.com/0xPolygon/rsa-verifier/command/helper"
	"github.com/0xPolygon/rsa-verifier/types"
)

type VerifyResult struct {
	Backend string     `json:"backend"`
	Fork    string     `json:"fork"`
	Digest  types.Hash `json:"digest"`
	Valid   bool       `json:"valid"`
	Cost    uint64     `json:"cost"`
}

func (r *VerifyResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[RSA SIGNATURE VERIFICATION]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Backend|%s", r.Backend),
		fmt.Sprintf("Fork|%s", r.Fork),
		fmt.Sprintf("Digest|%s", r.Digest),
		fmt.Sprintf("Valid|%t", r.Valid),
		fmt.Sprintf("Cost|%d", r.Cost),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
