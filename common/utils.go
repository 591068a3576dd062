package common

import (
	"encoding/hex"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrOddHex is returned for hex strings with an odd number of digits.
var ErrOddHex = errors.New("hex string has odd length")

// FromHex decodes a hex string, tolerating a 0x prefix and surrounding space.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return nil, ErrOddHex
	}
	return hex.DecodeString(s)
}

// ToHex renders b as upper case hex, the ledger convention.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func GetUint64FromStr(str string) (uint64, error) {
	res, err := strconv.ParseUint(str, 0, 64)
	if err != nil {
		return 0, errors.New("invalid unsigned 64 bit integer: " + str)
	}
	return res, nil
}

func GetUint32FromStr(str string) (uint32, error) {
	res, err := strconv.ParseUint(str, 0, 32)
	if err != nil {
		return 0, errors.New("invalid unsigned 32 bit integer: " + str)
	}
	return uint32(res), nil
}

func Now() int64 {
	return time.Now().Unix()
}

func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// FileExist reports whether a regular file or directory exists at path.
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
