package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"suitenest/internal/client"
	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/stay"
	"suitenest/internal/frontdesk"
	"suitenest/internal/pkg/clock"

	"github.com/google/uuid"
)

func printRooms(rooms []frontdesk.Room) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPRICE\tBOOKED")
	for _, r := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", r.ID, r.RoomType, r.Price, r.IsBooked)
	}
	_ = w.Flush()
}

func printBookings(bookings []frontdesk.Booking) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tROOM\tSTAY\tGUEST\tGUESTS\tSTATUS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			b.ID, b.ConfirmationCode, b.Room.RoomType, b.Stay, b.GuestFullName, b.TotalGuests, b.Status)
	}
	_ = w.Flush()
}

func runSearch(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	in := fs.String("in", "", "check-in date YYYY-MM-DD")
	out := fs.String("out", "", "check-out date YYYY-MM-DD")
	roomType := fs.String("type", "", "room type filter")
	_ = fs.Parse(args)

	s := frontdesk.NewAvailabilitySearch(a.api, clock.NewRealClock(), a.logger)
	defer s.Close()

	seq, err := s.Search(ctx, frontdesk.SearchQuery{CheckIn: *in, CheckOut: *out, RoomType: *roomType})
	if err != nil {
		return err
	}
	var rooms []frontdesk.Room
	for r := range seq {
		rooms = append(rooms, r)
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms available for the selected dates.")
		return nil
	}
	printRooms(rooms)
	return nil
}

func runRooms(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("rooms", flag.ExitOnError)
	roomType := fs.String("type", "", "show only this room type")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", frontdesk.DefaultPageSize, "page size")
	_ = fs.Parse(args)

	admin := frontdesk.NewRoomAdmin(a.api, frontdesk.NewRoomCatalog(nil, *size), a.logger)
	defer admin.Close()
	if err := admin.Load(ctx); err != nil {
		return err
	}

	catalog := admin.Catalog()
	catalog.FilterByRoomType(*roomType)
	catalog.SetPage(*page)
	printRooms(catalog.PageRooms())
	fmt.Printf("page %d of %d (%d rooms)\n", catalog.Page(), catalog.TotalPages(), catalog.Len())
	return nil
}

func runRoomTypes(ctx context.Context, a *app, _ []string) error {
	types, err := a.api.RoomTypes(ctx)
	if err != nil {
		return err
	}
	for _, t := range types {
		fmt.Println(t)
	}
	return nil
}

func runBook(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	roomID := fs.String("room", "", "room id")
	in := fs.String("in", "", "check-in date YYYY-MM-DD")
	out := fs.String("out", "", "check-out date YYYY-MM-DD")
	name := fs.String("name", "", "guest full name")
	email := fs.String("guest-email", "", "guest email (defaults to the account email)")
	adults := fs.String("adults", "1", "number of adults")
	children := fs.String("children", "0", "number of children")
	_ = fs.Parse(args)

	id, err := uuid.Parse(*roomID)
	if err != nil {
		return fmt.Errorf("invalid room id %q", *roomID)
	}
	if err := a.login(ctx); err != nil {
		return err
	}

	l := frontdesk.NewBookingLifecycle(a.session, id, a.api, a.api,
		pricing.NewNightlyPriceCalculator(), clock.NewRealClock(), a.logger)
	defer l.Close()

	if err := l.LoadRoom(ctx); err != nil {
		return err
	}
	if err := l.Edit(func(d *frontdesk.BookingDraft) {
		d.CheckIn, d.CheckOut = *in, *out
		d.GuestFullName = *name
		if *email != "" {
			d.GuestEmail = *email
		}
		d.NumOfAdults, d.NumOfChildren = *adults, *children
	}); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}

	summary, err := l.Summary()
	if err != nil {
		return err
	}
	fmt.Printf("%s, %d night(s), %d guest(s), total %s\n",
		summary.Draft.Stay, summary.Nights, summary.Draft.Guests.Total(), summary.Total)

	conf, err := l.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s\nconfirmation code: %s\n", conf.Message, conf.ConfirmationCode)
	return nil
}

func runBookings(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	from := fs.String("from", "", "only stays starting on or after this date")
	to := fs.String("to", "", "only stays ending on or before this date")
	_ = fs.Parse(args)

	if err := a.login(ctx); err != nil {
		return err
	}
	l := frontdesk.NewBookingListing(a.api, a.session, a.logger)
	defer l.Close()
	if err := l.Load(ctx); err != nil {
		return err
	}

	if *from != "" || *to != "" {
		f, err := stay.ParseDate(*from)
		if err != nil {
			return fmt.Errorf("invalid -from date %q", *from)
		}
		t, err := stay.ParseDate(*to)
		if err != nil {
			return fmt.Errorf("invalid -to date %q", *to)
		}
		l.FilterByStay(f, t)
	}
	printBookings(l.Bookings())
	return nil
}

func runLookup(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	code := fs.String("code", "", "confirmation code")
	_ = fs.Parse(args)

	l := frontdesk.NewBookingListing(a.api, a.session, a.logger)
	defer l.Close()
	b, err := l.FindByConfirmationCode(ctx, *code)
	if err != nil {
		return err
	}
	printBookings([]frontdesk.Booking{b})
	return nil
}

func runCancel(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	code := fs.String("code", "", "confirmation code of the booking to cancel")
	_ = fs.Parse(args)

	l := frontdesk.NewBookingListing(a.api, a.session, a.logger)
	defer l.Close()
	b, err := l.FindByConfirmationCode(ctx, *code)
	if err != nil {
		return err
	}
	if err := l.Cancel(ctx, b.ID); err != nil {
		return err
	}
	fmt.Printf("Booking %s has been cancelled.\n", b.ConfirmationCode)
	return nil
}

func roomUploadFlags(fs *flag.FlagSet) func() (client.RoomUpload, error) {
	roomType := fs.String("type", "", "room type")
	price := fs.String("price", "", "price per night, e.g. 120.00")
	photo := fs.String("photo", "", "path to a photo")
	return func() (client.RoomUpload, error) {
		up := client.RoomUpload{RoomType: *roomType, RoomPrice: *price}
		if *photo != "" {
			data, err := os.ReadFile(*photo)
			if err != nil {
				return client.RoomUpload{}, err
			}
			up.Photo = data
			up.PhotoName = filepath.Base(*photo)
		}
		return up, nil
	}
}

func runAddRoom(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("add-room", flag.ExitOnError)
	upload := roomUploadFlags(fs)
	_ = fs.Parse(args)

	up, err := upload()
	if err != nil {
		return err
	}
	if err := a.login(ctx); err != nil {
		return err
	}
	admin := frontdesk.NewRoomAdmin(a.api, frontdesk.NewRoomCatalog(nil, 0), a.logger)
	defer admin.Close()
	room, err := admin.Add(ctx, up)
	if err != nil {
		return err
	}
	printRooms([]frontdesk.Room{room})
	return nil
}

func runUpdateRoom(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("update-room", flag.ExitOnError)
	roomID := fs.String("room", "", "room id")
	upload := roomUploadFlags(fs)
	_ = fs.Parse(args)

	id, err := uuid.Parse(*roomID)
	if err != nil {
		return fmt.Errorf("invalid room id %q", *roomID)
	}
	up, err := upload()
	if err != nil {
		return err
	}
	if err := a.login(ctx); err != nil {
		return err
	}
	admin := frontdesk.NewRoomAdmin(a.api, frontdesk.NewRoomCatalog(nil, 0), a.logger)
	defer admin.Close()
	room, err := admin.Update(ctx, id, up)
	if err != nil {
		return err
	}
	printRooms([]frontdesk.Room{room})
	return nil
}

func runDeleteRoom(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("delete-room", flag.ExitOnError)
	roomID := fs.String("room", "", "room id")
	_ = fs.Parse(args)

	id, err := uuid.Parse(*roomID)
	if err != nil {
		return fmt.Errorf("invalid room id %q", *roomID)
	}
	if err := a.login(ctx); err != nil {
		return err
	}
	admin := frontdesk.NewRoomAdmin(a.api, frontdesk.NewRoomCatalog(nil, 0), a.logger)
	defer admin.Close()
	if err := admin.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Room deleted.")
	return nil
}
