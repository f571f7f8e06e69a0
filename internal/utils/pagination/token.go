package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeSaleCursor creates an opaque token pointing just past the given sale
// in newest-first order.
func EncodeSaleCursor(c domain.SaleCursor) string {
	return EncodeMultiFieldToken(c.SaleDate, c.SaleTime, strconv.FormatInt(c.ID, 10))
}

// DecodeSaleCursor parses a token produced by EncodeSaleCursor.
func DecodeSaleCursor(token string) (*domain.SaleCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}
	if err := domain.ValidateDate("page token date", parts[0]); err != nil {
		return nil, fmt.Errorf("invalid pagination token format (date): %w", err)
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	return &domain.SaleCursor{SaleDate: parts[0], SaleTime: parts[1], ID: id}, nil
}
