package tui

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-05-01", "2026-05-01", false},
		{"  2026-05-01  ", "2026-05-01", false},
		{"", "", false},
		{"tomorrow", time.Now().AddDate(0, 0, 1).Format("2006-01-02"), false},
		{"certainly not a date", "", true},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"42.50", 42.50, false},
		{"42,50", 42.50, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOptionalAmount(t *testing.T) {
	if v, err := parseOptionalAmount("  "); err != nil || v != nil {
		t.Errorf("parseOptionalAmount(blank) = (%v, %v), want (nil, nil)", v, err)
	}
	v, err := parseOptionalAmount("12")
	if err != nil || v == nil || *v != 12 {
		t.Errorf("parseOptionalAmount(12) = (%v, %v), want 12", v, err)
	}
}

func TestZeroAmountExpenseRejectedLocally(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = openTrip(t, m, 7)
	m.tab = tabExpenses
	m.form = newForm("Add expense", 0,
		newTextField("Title", "", "Coffee"),
		newTextField("Amount", "", "0"),
		newChoiceField("Category", expenseCategoryChoices(), "FOOD"),
		newTextField("Date", "", "2026-05-01"),
	)

	updated, cmd := m.submitExpenseForm()
	m = updated.(Model)

	if m.localErr == "" {
		t.Error("zero amount passed local validation")
	}
	if cmd != nil {
		t.Error("a request was issued despite the validation failure")
	}
	if m.form == nil {
		t.Error("form dismissed on a validation failure")
	}
}

func TestMalformedDateRejectedLocally(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = openTrip(t, m, 7)
	m.tab = tabExpenses
	m.form = newForm("Add expense", 0,
		newTextField("Title", "", "Coffee"),
		newTextField("Amount", "", "5"),
		newChoiceField("Category", expenseCategoryChoices(), "FOOD"),
		newTextField("Date", "", "not even close"),
	)

	updated, cmd := m.submitExpenseForm()
	m = updated.(Model)

	if m.localErr == "" || cmd != nil {
		t.Errorf("malformed date: localErr=%q cmd=%v, want local rejection", m.localErr, cmd)
	}
}
