package booking

import (
	"testing"
	"time"

	"github.com/niramoy/clinic-booking/internal/denylist"
	"github.com/niramoy/clinic-booking/internal/httperr"
)

func testDenylist(ids ...string) *denylist.Denylist {
	return denylist.New(func() ([]string, error) {
		return ids, nil
	})
}

// 2025-11-23 is a Sunday.
func validIntake() Intake {
	return Intake{
		PatientName:   "Rahim Uddin",
		PatientAge:    42,
		PatientGender: "Male",
		Mobile:        "01712345678",
		Email:         "rahim@example.com",

		AppointmentDate: "2025-11-23T10:00:00",
		DoctorName:      "Dr. Karim",
		AppointmentType: "IN_PERSON",

		PaymentMobile:        "01712345678",
		PaymentTransactionID: "AB12CD34EF",
		PaymentMethod:        MethodBkash,
		AmountPaid:           500.0,
	}
}

func assertBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil error", code)
	}
	if got := httperr.BusinessCode(err); got != code {
		t.Fatalf("error code = %q, want %q (err: %v)", got, code, err)
	}
}

func TestValidateAndNormalizeHappyPath(t *testing.T) {
	ap, err := ValidateAndNormalize(validIntake(), nil, testDenylist(), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.PatientName != "Rahim Uddin" {
		t.Errorf("patient name = %q", ap.PatientName)
	}
	if !ap.AppointmentDate.Equal(time.Date(2025, 11, 23, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("appointment date = %v", ap.AppointmentDate)
	}
	if ap.AmountPaid != 500 {
		t.Errorf("amount = %v, want 500", ap.AmountPaid)
	}
	if ap.Serial != 0 {
		t.Errorf("serial should not be set by the validator, got %d", ap.Serial)
	}
	if ap.UserID != "" {
		t.Errorf("guest booking should have empty user id, got %q", ap.UserID)
	}
}

func TestRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Intake)
	}{
		{"patient_name", func(in *Intake) { in.PatientName = "" }},
		{"patient_age", func(in *Intake) { in.PatientAge = 0 }},
		{"patient_age", func(in *Intake) { in.PatientAge = -3 }},
		{"patient_gender", func(in *Intake) { in.PatientGender = "" }},
		{"mobile", func(in *Intake) { in.Mobile = "  " }},
		{"email", func(in *Intake) { in.Email = "" }},
		{"appointment_date", func(in *Intake) { in.AppointmentDate = nil }},
		{"appointment_date", func(in *Intake) { in.AppointmentDate = "" }},
		{"doctor_name", func(in *Intake) { in.DoctorName = "" }},
		{"payment_mobile", func(in *Intake) { in.PaymentMobile = "" }},
		{"payment_transaction_id", func(in *Intake) { in.PaymentTransactionID = "" }},
		{"payment_method", func(in *Intake) { in.PaymentMethod = "" }},
		{"appointment_type", func(in *Intake) { in.AppointmentType = "" }},
	}

	for _, tc := range cases {
		in := validIntake()
		tc.mutate(&in)

		_, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
		assertBusinessCode(t, err, "missing_field")
		if detail := httperr.BusinessDetail(err); detail != tc.field {
			t.Errorf("detail = %q, want %q", detail, tc.field)
		}
	}
}

func TestWeekdayPolicy(t *testing.T) {
	cases := []struct {
		name    string
		date    string // 21st = Friday, 22nd = Saturday, 23rd = Sunday
		isScope bool
		wantErr bool
	}{
		{"regular on friday rejected", "2025-11-21T10:00:00", false, true},
		{"regular on saturday rejected", "2025-11-22T10:00:00", false, true},
		{"regular on sunday accepted", "2025-11-23T10:00:00", false, false},
		{"scope on friday accepted", "2025-11-21T10:00:00", true, false},
		{"scope on saturday accepted", "2025-11-22T10:00:00", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validIntake()
			in.AppointmentDate = tc.date
			in.IsScope = tc.isScope

			_, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
			if tc.wantErr {
				assertBusinessCode(t, err, "disallowed_day")
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWeekdayJudgedInClinicTime(t *testing.T) {
	clinic := time.FixedZone("BST", 6*60*60)

	// Thursday 23:00 in the client's -06:00 offset is already Friday 11:00
	// at the clinic, so a regular booking must be rejected.
	in := validIntake()
	in.AppointmentDate = "2025-11-20T23:00:00-06:00"

	_, err := ValidateAndNormalize(in, nil, testDenylist(), clinic)
	assertBusinessCode(t, err, "disallowed_day")
}

func TestDateRepairHeuristic(t *testing.T) {
	in := validIntake()
	in.AppointmentDate = "2025-11-23T1:00:00"

	ap, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 11, 23, 1, 0, 0, 0, time.UTC)
	if !ap.AppointmentDate.Equal(want) {
		t.Fatalf("repaired date = %v, want %v", ap.AppointmentDate, want)
	}
}

func TestDateParsing(t *testing.T) {
	cases := []struct {
		name     string
		raw      any
		wantCode string
	}{
		{"garbage string", "not-a-date", "invalid_date"},
		{"numeric input", 1234567890, "invalid_input_type"},
		{"boolean input", true, "invalid_input_type"},
		{"zero time value", time.Time{}, "invalid_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validIntake()
			in.AppointmentDate = tc.raw

			_, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
			assertBusinessCode(t, err, tc.wantCode)
		})
	}

	t.Run("time value accepted", func(t *testing.T) {
		in := validIntake()
		in.AppointmentDate = time.Date(2025, 11, 24, 9, 30, 0, 0, time.UTC)

		ap, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.AppointmentDate.Hour() != 9 || ap.AppointmentDate.Minute() != 30 {
			t.Fatalf("date = %v", ap.AppointmentDate)
		}
	})
}

func TestTransactionIDFormat(t *testing.T) {
	bad := []string{"short", "lowercase12", "WAY-TOO-LONG-FOR-A-TXN", "AB12CD3!"}
	for _, id := range bad {
		in := validIntake()
		in.PaymentTransactionID = id

		_, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
		assertBusinessCode(t, err, "invalid_transaction_format")
	}
}

func TestBlacklistedTransaction(t *testing.T) {
	// stored lower-case, submitted upper-case: still blocked
	deny := testDenylist("ab12cd34ef")

	in := validIntake()
	in.PaymentTransactionID = "AB12CD34EF"

	_, err := ValidateAndNormalize(in, nil, deny, time.UTC)
	assertBusinessCode(t, err, "blacklisted_transaction")
}

func TestIdentityEnrichment(t *testing.T) {
	t.Run("identity email fills missing email", func(t *testing.T) {
		in := validIntake()
		in.Email = ""
		identity := &Identity{ID: "17", Email: "account@example.com"}

		ap, err := ValidateAndNormalize(in, identity, testDenylist(), time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.Email != "account@example.com" {
			t.Errorf("email = %q", ap.Email)
		}
		if ap.UserID != "17" {
			t.Errorf("user id = %q, want 17", ap.UserID)
		}
	})

	t.Run("explicit email wins over identity email", func(t *testing.T) {
		in := validIntake()
		identity := &Identity{ID: "17", Email: "account@example.com"}

		ap, err := ValidateAndNormalize(in, identity, testDenylist(), time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.Email != "rahim@example.com" {
			t.Errorf("email = %q", ap.Email)
		}
	})
}

func TestAmountCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want float64
	}{
		{"float", 250.5, 250.5},
		{"numeric string", "250.50", 250.5},
		{"integer", 300, 300},
		{"garbage string", "five hundred", 0},
		{"absent", nil, 0},
		{"negative clamped", -50.0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validIntake()
			in.AmountPaid = tc.raw

			ap, err := ValidateAndNormalize(in, nil, testDenylist(), time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.AmountPaid != tc.want {
				t.Fatalf("amount = %v, want %v", ap.AmountPaid, tc.want)
			}
		})
	}
}
