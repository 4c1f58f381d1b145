package receipt

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidApprovalNo = errors.New("invalid approval number")
	ErrInvalidStay       = errors.New("receipt cannot be issued for an invalid stay")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

const (
	DefaultMerchantName = "Digital Empire II"
	DefaultCardName     = "Credit Card"
	DefaultItem         = "Parking Fee"
	maskedCardNumber    = "****-****-****-****"
)

var approvalNoRegex = regexp.MustCompile(`^[0-9A-Z\-]{4,32}$`)

type ApprovalNo string

func NewApprovalNo(s string) (ApprovalNo, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !approvalNoRegex.MatchString(s) {
		return "", ErrInvalidApprovalNo
	}
	return ApprovalNo(s), nil
}

func (a ApprovalNo) String() string {
	return string(a)
}

// CardNumber only ever holds a masked number; at most the last four digits survive.
type CardNumber string

func NewCardNumber(raw string) CardNumber {
	digits := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return CardNumber(maskedCardNumber)
	}
	return CardNumber("****-****-****-" + string(digits[len(digits)-4:]))
}

func (c CardNumber) String() string {
	return string(c)
}
