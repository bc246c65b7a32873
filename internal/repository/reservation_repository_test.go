package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rachtours/tour-reservation/internal/model"
)

func newMock(t *testing.T) (*ReservationRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewReservationRepo(db), mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "tour", "tours", "date", "time", "people",
		"total_price", "transport", "special_request", "confirmation_message",
		"status", "created_at",
	})
}

func TestCreateSetsIDAndPendingStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs("Alice", "+212600000000", "Souk Tour", "[]", "2030-01-02", "10:00",
			2, 30.0, false, "", "msg").
		WillReturnResult(sqlmock.NewResult(7, 1))

	res := &model.Reservation{
		Name: "Alice", Phone: "+212600000000", TourNames: "Souk Tour", Tours: "[]",
		Date: "2030-01-02", Time: "10:00", Guests: 2, TotalPrice: 30,
		ConfirmationMessage: "msg",
	}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.ID != 7 {
		t.Fatalf("id = %d, want 7", res.ID)
	}
	if res.Status != model.StatusPending {
		t.Fatalf("status = %q, want pending", res.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListClampsLimitAndOffset(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM reservations WHERE 1=1 ORDER BY id DESC LIMIT \\? OFFSET \\?").
		WithArgs(100, 0).
		WillReturnRows(reservationRows())

	_, err := repo.List(context.Background(), ListFilter{Limit: 500, Offset: -3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAppliesStatusAndSearchFilters(t *testing.T) {
	repo, mock := newMock(t)

	rows := reservationRows().AddRow(
		3, "Bob", "0611", "City Tour", "[]", "2030-02-01", "09:00", 4,
		100.0, true, "", "msg", "pending", time.Now())

	mock.ExpectQuery("AND status = \\? AND \\(name LIKE \\? OR phone LIKE \\?\\)").
		WithArgs("pending", "%bob%", "%bob%", 50, 0).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), ListFilter{Status: "pending", Search: "bob"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Bob" || out[0].Guests != 4 {
		t.Fatalf("unexpected rows: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM reservations WHERE id = \\?").
		WithArgs(uint64(42)).
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE reservations SET status").
		WithArgs("confirmed", uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(context.Background(), 9, "confirmed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{
		"total", "guests", "revenue",
		"pending", "confirmed", "cancelled", "successful",
		"pending_g", "confirmed_g", "cancelled_g", "successful_g",
	}).AddRow(10, 25, 350.004, 4, 3, 1, 2, 8, 9, 2, 6)

	mock.ExpectQuery("SELECT\\s+COUNT\\(\\*\\)").WillReturnRows(rows)

	st, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalBookings != 10 || st.TotalGuests != 25 {
		t.Fatalf("totals wrong: %+v", st)
	}
	if st.TotalRevenue != 350.0 {
		t.Fatalf("revenue not rounded to cents: %v", st.TotalRevenue)
	}
	if st.SuccessfulCount != 2 || st.SuccessfulGuests != 6 {
		t.Fatalf("successful aggregates wrong: %+v", st)
	}
}
