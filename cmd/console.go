package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tablebook/config"
	"tablebook/helpers"
	"tablebook/models"
	"tablebook/storage"
)

func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the front-desk console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			restaurant, store, err := bootstrapRestaurant(cfg)
			if err != nil {
				return err
			}
			console := &console{
				restaurant: restaurant,
				store:      store,
				in:         bufio.NewScanner(os.Stdin),
			}
			console.run()
			return nil
		},
	}
}

// console is the single-threaded numbered-menu front end. No locking is
// needed; one operator drives one loop.
type console struct {
	restaurant *models.Restaurant
	store      *storage.Store
	in         *bufio.Scanner
}

func (cs *console) run() {
	for {
		cs.restaurant.Sheet.UpdateTableStatuses(time.Now())
		fmt.Println()
		fmt.Printf("===== %s =====\n", cs.restaurant.Name)
		fmt.Println("1.  Show tables")
		fmt.Println("2.  List reservations")
		fmt.Println("3.  Create reservation")
		fmt.Println("4.  Record walk-in")
		fmt.Println("5.  Mark reservation seated")
		fmt.Println("6.  Mark reservation completed")
		fmt.Println("7.  Cancel reservation")
		fmt.Println("8.  Record order")
		fmt.Println("9.  Show menu")
		fmt.Println("10. Show staff")
		fmt.Println("11. Daily report")
		fmt.Println("0.  Quit")

		choice, err := cs.readInt("Choose an option: ")
		if err != nil {
			fmt.Println("Bye.")
			return
		}
		switch choice {
		case 1:
			cs.showTables()
		case 2:
			cs.listReservations()
		case 3:
			cs.createReservation()
		case 4:
			cs.recordWalkIn()
		case 5:
			cs.transition(models.ReservationSeated)
		case 6:
			cs.transition(models.ReservationCompleted)
		case 7:
			cs.transition(models.ReservationCancelled)
		case 8:
			cs.recordOrder()
		case 9:
			cs.showMenu()
		case 10:
			cs.showStaff()
		case 11:
			fmt.Print(cs.restaurant.GenerateDailyReport().Summary())
		case 0:
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (cs *console) readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	if !cs.in.Scan() {
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(cs.in.Text()), nil
}

func (cs *console) readInt(prompt string) (int, error) {
	for {
		line, err := cs.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return value, nil
	}
}

func (cs *console) persist() {
	if err := cs.store.Save(storage.Encode(cs.restaurant)); err != nil {
		log.Println("error saving booking data:", err)
	}
}

func (cs *console) showTables() {
	fmt.Println("Tables:")
	for _, table := range cs.restaurant.Sheet.Tables() {
		fmt.Printf("  #%d (%d seats, %s) %s\n", table.ID, table.Capacity, table.Location, table.Status)
	}
}

func (cs *console) listReservations() {
	reservations := cs.restaurant.Sheet.Reservations()
	if len(reservations) == 0 {
		fmt.Println("No reservations yet.")
		return
	}
	fmt.Println("Reservations:")
	for _, r := range reservations {
		line := fmt.Sprintf("  %s %s party=%d at %s", r.ID, r.Customer.Name, r.PartySize, helpers.FormatDateTime(r.StartTime))
		if r.TableID != nil {
			line += fmt.Sprintf(" table=%d", *r.TableID)
		}
		fmt.Printf("%s status=%s\n", line, r.Status)
	}
}

func (cs *console) createReservation() {
	name, err := cs.readLine("Customer name: ")
	if err != nil {
		return
	}
	phone, _ := cs.readLine("Phone: ")
	email, _ := cs.readLine("Email (optional): ")
	preference, _ := cs.readLine("Preference (optional): ")
	partySize, err := cs.readInt("Party size: ")
	if err != nil {
		return
	}
	timeText, _ := cs.readLine("Time (YYYY-MM-DD HH:MM): ")
	start, err := helpers.ParseDateTime(timeText)
	if err != nil {
		fmt.Println("Invalid time format.")
		return
	}
	notes, _ := cs.readLine("Notes (optional): ")

	customer, err := models.NewCustomer(name, phone, email, preference)
	if err != nil {
		fmt.Println(err)
		return
	}

	sheet := cs.restaurant.Sheet
	candidates := sheet.FindAvailableTables(partySize, start, models.DefaultSeatingDuration, "")
	if len(candidates) == 0 {
		fmt.Println("No table available for that window.")
		return
	}
	fmt.Print("Available tables:")
	for _, id := range candidates {
		fmt.Printf(" %d", id)
	}
	fmt.Println()

	reservation, err := sheet.CreateReservation(customer, partySize, start, models.DefaultSeatingDuration, notes, time.Now())
	if err != nil {
		fmt.Println(err)
		return
	}
	cs.persist()
	if reservation.TableID != nil {
		fmt.Printf("Booked %s on table %d.\n", reservation.ID, *reservation.TableID)
	} else {
		fmt.Printf("Booked %s, no table assigned yet.\n", reservation.ID)
	}
}

func (cs *console) recordWalkIn() {
	name, err := cs.readLine("Customer name: ")
	if err != nil {
		return
	}
	phone, _ := cs.readLine("Phone: ")
	partySize, err := cs.readInt("Party size: ")
	if err != nil {
		return
	}
	notes, _ := cs.readLine("Notes (optional): ")

	customer, err := models.NewCustomer(name, phone, "", "")
	if err != nil {
		fmt.Println(err)
		return
	}
	reservation, err := cs.restaurant.Sheet.RecordWalkIn(customer, partySize, notes, time.Now())
	if err != nil {
		fmt.Println(err)
		return
	}
	cs.persist()
	if reservation.TableID != nil {
		fmt.Printf("Seated walk-in %s on table %d.\n", reservation.ID, *reservation.TableID)
	} else {
		fmt.Printf("Recorded walk-in %s, no table free right now.\n", reservation.ID)
	}
}

func (cs *console) transition(to models.ReservationStatus) {
	id, err := cs.readLine("Reservation id: ")
	if err != nil {
		return
	}
	reservation := cs.restaurant.Sheet.ReservationByID(id)
	if reservation == nil {
		fmt.Println("Reservation not found.")
		return
	}
	if err := reservation.Transition(to, time.Now()); err != nil {
		fmt.Println(err)
		return
	}
	cs.persist()
	fmt.Printf("%s is now %s.\n", id, to)
}

func (cs *console) recordOrder() {
	reservationID, err := cs.readLine("Reservation id: ")
	if err != nil {
		return
	}
	sheet := cs.restaurant.Sheet
	if sheet.ReservationByID(reservationID) == nil {
		fmt.Println("Reservation not found.")
		return
	}
	order := sheet.RecordOrder(reservationID)
	fmt.Printf("Order %s opened. Enter items, blank line to finish.\n", order.ID)
	for {
		name, err := cs.readLine("Menu item: ")
		if err != nil || name == "" {
			break
		}
		item, ok := cs.restaurant.FindMenuItem(name)
		if !ok {
			fmt.Println("Not on the menu.")
			continue
		}
		quantity, err := cs.readInt("Quantity: ")
		if err != nil {
			break
		}
		if err := order.AddItem(item, quantity); err != nil {
			fmt.Println(err)
		}
	}
	cs.persist()
	fmt.Printf("Order total: $%s\n", order.Total().StringFixed(2))
}

func (cs *console) showMenu() {
	fmt.Println("Menu:")
	for _, item := range cs.restaurant.Menu() {
		fmt.Printf("  - %s: %s $%s\n", item.Category, item.Name, item.Price.StringFixed(2))
	}
}

func (cs *console) showStaff() {
	fmt.Println("Staff:")
	for _, member := range cs.restaurant.Staff() {
		fmt.Printf("  - %s %s (%s)\n", member.Role.Name, member.Name, member.Contact)
	}
}
