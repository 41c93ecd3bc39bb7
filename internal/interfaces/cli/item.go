package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
)

// ErrInvalidItem is returned for an --item value that does not parse.
var ErrInvalidItem = errors.New("invalid item")

// parseItem reads LxWxH:gross[:carrier[:divisor]], e.g. "50x40x30:10:DHL"
// or "50x40x30:10:custom:3000". The "×" sign is accepted in place of "x".
func parseItem(s string) (dto.ShipmentItemRequest, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return dto.ShipmentItemRequest{}, fmt.Errorf("%w %q: want LxWxH:gross[:carrier[:divisor]]", ErrInvalidItem, s)
	}

	dims := strings.FieldsFunc(strings.ToLower(parts[0]), func(r rune) bool {
		return r == 'x' || r == '×'
	})
	if len(dims) != 3 {
		return dto.ShipmentItemRequest{}, fmt.Errorf("%w %q: dimensions must be LxWxH", ErrInvalidItem, s)
	}

	var nums [4]float64
	fields := append(dims, parts[1])
	names := [4]string{"length", "width", "height", "gross weight"}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return dto.ShipmentItemRequest{}, fmt.Errorf("%w %q: %s: %v", ErrInvalidItem, s, names[i], err)
		}
		nums[i] = v
	}

	item := dto.ShipmentItemRequest{
		Length:      nums[0],
		Width:       nums[1],
		Height:      nums[2],
		GrossWeight: nums[3],
	}
	if len(parts) > 2 {
		item.Carrier = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		d, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return dto.ShipmentItemRequest{}, fmt.Errorf("%w %q: divisor: %v", ErrInvalidItem, s, err)
		}
		item.CustomDivisor = d
	}
	return item, nil
}
