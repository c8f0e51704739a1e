package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/grievance-portal/grievance-api/internal/constants"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateComplaintID generates a public complaint identifier in the format
// GRP-<base36 unix millis>-<base36 random>.
func GenerateComplaintID() (string, error) {
	return generateComplaintID(time.Now())
}

func generateComplaintID(now time.Time) (string, error) {
	random, err := randomBase36(constants.ComplaintIDRandomLength)
	if err != nil {
		return "", err
	}

	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", constants.ComplaintIDPrefix, stamp, random), nil
}

func randomBase36(length int) (string, error) {
	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(base36Alphabet)))

	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		result[i] = base36Alphabet[n.Int64()]
	}
	return string(result), nil
}
