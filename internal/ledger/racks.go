// Package ledger holds the order and rack bookkeeping: rack allocation,
// the delivery payment gate and dashboard metrics.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// RowWidth is the number of racks per lettered row.
const RowWidth = 10

// maxRow bounds row labels so positions stay representable as int.
const maxRow = (math.MaxInt/RowWidth - 26) / 26

// ListAllRacks returns the rack identifiers for a shop with total racks,
// row by row: A1..A10, B1..B10 and so on. Rows past Z continue AA, AB.
func ListAllRacks(total int) []string {
	if total <= 0 {
		return nil
	}
	racks := make([]string, 0, total)
	for i := 0; i < total; i++ {
		racks = append(racks, rowLabel(i/RowWidth)+strconv.Itoa(i%RowWidth+1))
	}
	return racks
}

func rowLabel(row int) string {
	var label []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}
	return string(label)
}

// NormalizeRack canonicalises user input such as " a1 ".
func NormalizeRack(rack string) string {
	return strings.ToUpper(strings.TrimSpace(rack))
}

// RackPosition returns the zero-based index of rack in ListAllRacks order.
func RackPosition(rack string) (int, bool) {
	split := strings.IndexFunc(rack, func(r rune) bool { return r < 'A' || r > 'Z' })
	if split <= 0 {
		return 0, false
	}
	col, err := strconv.Atoi(rack[split:])
	if err != nil || col < 1 || col > RowWidth || strconv.Itoa(col) != rack[split:] {
		return 0, false
	}
	row := 0
	for _, c := range rack[:split] {
		if row > maxRow {
			return 0, false
		}
		row = row*26 + int(c-'A'+1)
	}
	return (row-1)*RowWidth + col - 1, true
}

// ValidRack reports whether rack exists in a shop with total racks.
func ValidRack(rack string, total int) bool {
	pos, ok := RackPosition(rack)
	return ok && pos >= 0 && pos < total
}

// OccupiedRacks maps every rack held by an order that is still in the shop
// to the line item holding it. Two items claiming one rack is reported as
// ErrRackConflict; the returned map then holds the last claim seen.
func OccupiedRacks(orders []model.Order) (map[string]model.RackAssignment, error) {
	occupied := make(map[string]model.RackAssignment)
	var conflict error
	for _, order := range orders {
		if !order.Status.HoldsRacks() {
			continue
		}
		for _, item := range order.Items {
			if prev, taken := occupied[item.Rack]; taken && conflict == nil {
				conflict = fmt.Errorf("%w: %s held by %s and %s", domainErrors.ErrRackConflict, item.Rack, prev.OrderNumber, order.Number)
			}
			occupied[item.Rack] = assignmentOf(order, item)
		}
	}
	return occupied, conflict
}

// FreeRacks lists racks not held by any in-shop line item, in ListAllRacks order.
func FreeRacks(total int, orders []model.Order) ([]string, error) {
	occupied, err := OccupiedRacks(orders)
	return subtract(ListAllRacks(total), occupied), err
}

// RackInfo finds the line item occupying rack.
func RackInfo(rack string, orders []model.Order) (model.RackAssignment, bool) {
	for _, order := range orders {
		if !order.Status.HoldsRacks() {
			continue
		}
		for _, item := range order.Items {
			if item.Rack == rack {
				return assignmentOf(order, item), true
			}
		}
	}
	return model.RackAssignment{}, false
}

func assignmentOf(order model.Order, item model.LineItem) model.RackAssignment {
	return model.RackAssignment{
		Rack:        item.Rack,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		ItemID:      item.ID,
		Brand:       item.Brand,
	}
}

func subtract(all []string, occupied map[string]model.RackAssignment) []string {
	free := make([]string, 0, len(all))
	for _, rack := range all {
		if _, taken := occupied[rack]; !taken {
			free = append(free, rack)
		}
	}
	return free
}
