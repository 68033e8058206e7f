package types

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPartNumber formats the public identifier assigned to an entry,
// e.g. prefix "JBEI" and id 17 yield "JBEI-000017".
func GetPartNumber(prefix string, id int64) string {
	return fmt.Sprintf("%s-%06d", prefix, id)
}

func ParsePartNumber(partNumber string) (prefix string, id int64, err error) {
	idx := strings.LastIndex(partNumber, "-")
	if idx <= 0 || idx == len(partNumber)-1 {
		return "", 0, fmt.Errorf("malformed part number %s", partNumber)
	}
	prefix = partNumber[:idx]
	id, err = strconv.ParseInt(partNumber[idx+1:], 10, 64)
	if err != nil {
		return "", 0, err
	}
	return prefix, id, nil
}
