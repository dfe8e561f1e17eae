package utils

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// KeyObjectID returns the object id portion of an "ASIC_STATE:<type>:<oid>"
// key. The oid itself contains a colon ("oid:0x..."), so only the first two
// separators delimit.
func KeyObjectID(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// OidValue parses the numeric value of an "oid:0x..." identifier.
func OidValue(oid string) (uint64, error) {
	s := strings.TrimPrefix(oid, "oid:")
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid oid %s", oid)
	}
	return v, nil
}

// TableKeySuffix returns the part of a "TABLE|a|b|c" key after the table name.
func TableKeySuffix(key string) string {
	i := strings.IndexByte(key, '|')
	if i < 0 {
		return ""
	}
	return key[i+1:]
}

// LastKeySegment returns the final "|"-separated segment of a key.
func LastKeySegment(key string) string {
	i := strings.LastIndexByte(key, '|')
	return key[i+1:]
}

// FirstKeySegment returns the leading "|"-separated segment of a key suffix.
func FirstKeySegment(key string) string {
	if i := strings.IndexByte(key, '|'); i >= 0 {
		return key[:i]
	}
	return key
}
