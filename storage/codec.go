package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tablebook/models"
)

// Header identifies the flat-file format version. Every data file starts with
// this exact line.
const Header = "BOOKING_DATA_V1"

// V1 enum codes. Table statuses and reservation statuses each have their own
// 0-based table; the two sets are unrelated even where the numbers coincide.
var tableStatusCodes = map[models.TableStatus]int{
	models.TableFree:         0,
	models.TableReserved:     1,
	models.TableOccupied:     2,
	models.TableOutOfService: 3,
}

var reservationStatusCodes = map[models.ReservationStatus]int{
	models.ReservationOpen:      0,
	models.ReservationSeated:    1,
	models.ReservationCompleted: 2,
	models.ReservationCancelled: 3,
}

func tableStatusFromCode(code int) models.TableStatus {
	for status, c := range tableStatusCodes {
		if c == code {
			return status
		}
	}
	return models.TableFree
}

func reservationStatusFromCode(code int) models.ReservationStatus {
	for status, c := range reservationStatusCodes {
		if c == code {
			return status
		}
	}
	return models.ReservationOpen
}

func escapeField(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, ch := range value {
		switch ch {
		case '\\':
			b.WriteString(`\\`)
		case '|':
			b.WriteString(`\|`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func unescapeField(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	escape := false
	for _, ch := range value {
		if escape {
			switch ch {
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case '|':
				b.WriteByte('|')
			default:
				b.WriteRune(ch)
			}
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		b.WriteRune(ch)
	}
	if escape {
		b.WriteByte('\\')
	}
	return b.String()
}

// splitEscaped splits a record line on unescaped pipes. Escapes other than
// the delimiter are left in place for unescapeField to resolve.
func splitEscaped(line string) []string {
	var parts []string
	var current strings.Builder
	escape := false
	for _, ch := range line {
		if escape {
			if ch == '|' {
				current.WriteByte('|')
			} else {
				current.WriteByte('\\')
				current.WriteRune(ch)
			}
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '|' {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}
	if escape {
		current.WriteByte('\\')
	}
	parts = append(parts, current.String())
	return parts
}

// bumpCounter advances a counter past the numeric suffix of an id carrying
// the given prefix, so ids never repeat after a load.
func bumpCounter(id string, prefix byte, counter *int) {
	if len(id) <= 1 || id[0] != prefix {
		return
	}
	value, err := strconv.Atoi(id[1:])
	if err != nil {
		return
	}
	if value+1 > *counter {
		*counter = value + 1
	}
}

// Encode serializes the restaurant's booking sheet into the V1 line format.
// The caller holds the aggregate lock while encoding; the returned bytes can
// be written to disk after the lock is released.
func Encode(restaurant *models.Restaurant) []byte {
	sheet := restaurant.Sheet
	var b strings.Builder

	b.WriteString(Header)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "DATE|%s\n", escapeField(sheet.Date()))
	fmt.Fprintf(&b, "NEXT_RESERVATION|%d\n", sheet.NextReservationNumber())
	fmt.Fprintf(&b, "NEXT_ORDER|%d\n", sheet.NextOrderNumber())

	for _, table := range sheet.Tables() {
		fmt.Fprintf(&b, "TABLE|%d|%d|%s|%d\n",
			table.ID, table.Capacity, escapeField(table.Location), tableStatusCodes[table.Status])
	}

	for _, r := range sheet.Reservations() {
		tableID := -1
		if r.TableID != nil {
			tableID = *r.TableID
		}
		fmt.Fprintf(&b, "RESERVATION|%s|%s|%s|%s|%s|%d|%d|%d|%d|%d|%s|%d\n",
			r.ID,
			escapeField(r.Customer.Name),
			escapeField(r.Customer.Phone),
			escapeField(r.Customer.Email),
			escapeField(r.Customer.Preference),
			r.PartySize,
			reservationStatusCodes[r.Status],
			r.StartTime.Unix(),
			int(r.Duration/time.Minute),
			tableID,
			escapeField(r.Notes),
			r.LastModified.Unix())
	}

	for _, order := range sheet.Orders() {
		fmt.Fprintf(&b, "ORDER|%s|%s\n", order.ID, order.ReservationID)
		for _, item := range order.Items {
			fmt.Fprintf(&b, "ORDER_ITEM|%s|%s|%s|%s|%d\n",
				order.ID,
				escapeField(item.Item.Name),
				escapeField(item.Item.Category),
				item.Item.Price.String(),
				item.Quantity)
		}
	}

	return []byte(b.String())
}

// Decode parses a V1 data file and replaces the restaurant's sheet state
// wholesale, then rebuilds the derived table statuses for the given instant.
// Any malformed record aborts the load with no state applied.
func Decode(data []byte, restaurant *models.Restaurant, now time.Time) error {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != Header {
		return fmt.Errorf("unsupported data file format")
	}

	sheet := restaurant.Sheet
	date := sheet.Date()
	nextReservation := sheet.NextReservationNumber()
	nextOrder := sheet.NextOrderNumber()

	var tables []*models.Table
	var reservations []*models.Reservation
	var orders []*models.Order
	orderByID := make(map[string]*models.Order)

	for _, raw := range lines[1:] {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		parts := splitEscaped(line)
		switch parts[0] {
		case "DATE":
			if len(parts) >= 2 {
				date = unescapeField(parts[1])
			}
		case "NEXT_RESERVATION":
			if len(parts) >= 2 {
				n, err := strconv.Atoi(parts[1])
				if err != nil {
					return fmt.Errorf("invalid NEXT_RESERVATION record: %q", parts[1])
				}
				nextReservation = n
			}
		case "NEXT_ORDER":
			if len(parts) >= 2 {
				n, err := strconv.Atoi(parts[1])
				if err != nil {
					return fmt.Errorf("invalid NEXT_ORDER record: %q", parts[1])
				}
				nextOrder = n
			}
		case "TABLE":
			table, err := decodeTable(parts)
			if err != nil {
				return err
			}
			tables = append(tables, table)
		case "RESERVATION":
			reservation, err := decodeReservation(parts)
			if err != nil {
				return err
			}
			reservations = append(reservations, reservation)
			bumpCounter(reservation.ID, 'R', &nextReservation)
		case "ORDER":
			if len(parts) < 3 {
				return fmt.Errorf("invalid order record: %q", line)
			}
			order := &models.Order{ID: parts[1], ReservationID: parts[2]}
			orders = append(orders, order)
			orderByID[order.ID] = order
			bumpCounter(order.ID, 'O', &nextOrder)
		case "ORDER_ITEM":
			if err := decodeOrderItem(parts, orderByID); err != nil {
				return err
			}
		}
	}

	sheet.ReplaceState(date, tables, reservations, orders, nextReservation, nextOrder)
	sheet.UpdateTableStatuses(now)
	return nil
}

func decodeTable(parts []string) (*models.Table, error) {
	if len(parts) < 5 {
		return nil, fmt.Errorf("invalid table record: %d fields", len(parts))
	}
	id, err1 := strconv.Atoi(parts[1])
	capacity, err2 := strconv.Atoi(parts[2])
	statusCode, err3 := strconv.Atoi(parts[4])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("invalid table record: %q", strings.Join(parts, "|"))
	}
	table, err := models.NewTable(id, capacity, unescapeField(parts[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid table record: %v", err)
	}
	table.Status = tableStatusFromCode(statusCode)
	return table, nil
}

func decodeReservation(parts []string) (*models.Reservation, error) {
	if len(parts) < 13 {
		return nil, fmt.Errorf("invalid reservation record: %d fields", len(parts))
	}
	partySize, err1 := strconv.Atoi(parts[6])
	statusCode, err2 := strconv.Atoi(parts[7])
	startEpoch, err3 := strconv.ParseInt(parts[8], 10, 64)
	durationMinutes, err4 := strconv.Atoi(parts[9])
	tableID, err5 := strconv.Atoi(parts[10])
	lastModified, err6 := strconv.ParseInt(parts[12], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
		return nil, fmt.Errorf("invalid reservation record: %q", parts[1])
	}

	reservation := &models.Reservation{
		ID: parts[1],
		Customer: models.Customer{
			Name:       unescapeField(parts[2]),
			Phone:      unescapeField(parts[3]),
			Email:      unescapeField(parts[4]),
			Preference: unescapeField(parts[5]),
		},
		PartySize:    partySize,
		StartTime:    time.Unix(startEpoch, 0),
		Duration:     time.Duration(durationMinutes) * time.Minute,
		Status:       reservationStatusFromCode(statusCode),
		Notes:        unescapeField(parts[11]),
		LastModified: time.Unix(lastModified, 0),
	}
	if tableID >= 0 {
		reservation.TableID = &tableID
	}
	return reservation, nil
}

func decodeOrderItem(parts []string, orderByID map[string]*models.Order) error {
	if len(parts) < 6 {
		return fmt.Errorf("invalid order item record: %d fields", len(parts))
	}
	order, ok := orderByID[parts[1]]
	if !ok {
		// orphan line, nothing to attach it to
		return nil
	}
	price, err := decimal.NewFromString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid order item price: %q", parts[4])
	}
	quantity, err := strconv.Atoi(parts[5])
	if err != nil {
		return fmt.Errorf("invalid order item quantity: %q", parts[5])
	}
	item, err := models.NewMenuItem(unescapeField(parts[2]), unescapeField(parts[3]), price)
	if err != nil {
		return fmt.Errorf("invalid order item record: %v", err)
	}
	return order.AddItem(item, quantity)
}
