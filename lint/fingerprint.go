package lint

import (
	"strconv"

	"github.com/minio/highwayhash"
)

// fingerprintKey must stay 32 bytes long, highwayhash panics on any other size
var fingerprintKey = []byte("shouldlint.finding.fingerprint..")

// Fingerprint identifies a finding by rule, path, message and the reported source text.
// It does not depend on the position, so it survives unrelated edits above the finding.
func Fingerprint(finding *Finding, source []byte) string {
	var data []byte
	for _, part := range []string{finding.Rule, finding.Path, finding.Message} {
		data = append(data, part...)
		data = append(data, 0)
	}
	if finding.Offset >= 0 && finding.EndOffset <= len(source) && finding.Offset <= finding.EndOffset {
		data = append(data, source[finding.Offset:finding.EndOffset]...)
	}
	return strconv.FormatUint(highwayhash.Sum64(data, fingerprintKey), 16)
}
