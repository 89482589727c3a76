package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MakeKey builds the object key for an intake upload:
// <prefix>/<unix-millis>-<token>-<original filename>.
// The original filename is kept verbatim apart from stripping any directory
// component; the timestamp+token front matter keeps keys unique in practice.
func MakeKey(prefix, filename string) string {
	name := filepath.Base(filename)
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	key := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, name)
	if prefix == "" {
		return key
	}
	return strings.TrimSuffix(prefix, "/") + "/" + key
}
