package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"extractd/internal/domain"
)

func TestEmails(t *testing.T) {
	emails := Emails("Contact john@example.com and jane.doe@company.org for more info")
	assert.Equal(t, []string{"john@example.com", "jane.doe@company.org"}, emails)
}

func TestEmails_PlusTag(t *testing.T) {
	emails := Emails("Contact john+test@example.com please")
	assert.Equal(t, []string{"john+test@example.com"}, emails)
}

func TestEmails_NoMatches(t *testing.T) {
	assert.Empty(t, Emails("No email addresses in this text"))
}

func TestPhoneNumbers(t *testing.T) {
	phones := PhoneNumbers("Call (555) 123-4567 or 555-987-6543 or +1 800 555 0199")
	assert.Contains(t, phones, "(555) 123-4567")
	assert.Contains(t, phones, "555-987-6543")
	assert.Contains(t, phones, "+1 800 555 0199")
}

func TestPhoneNumbers_VariousFormats(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Call 555.123.4567", "555.123.4567"},
		{"Phone: 5551234567", "5551234567"},
		{"Contact (555) 123-4567", "(555) 123-4567"},
		{"Call 555 123 4567", "555 123 4567"},
		{"Dial +1-555-123-4567 now", "+1-555-123-4567"},
	}
	for _, tt := range tests {
		assert.Contains(t, PhoneNumbers(tt.text), tt.expected, "text %q", tt.text)
	}
}

func TestDates(t *testing.T) {
	dates := Dates("Meeting on 12/25/2023, follow-up on 2024-01-15, and party on Jan 1, 2024")
	assert.Contains(t, dates, "12/25/2023")
	assert.Contains(t, dates, "2024-01-15")
	assert.Contains(t, dates, "Jan 1, 2024")
}

func TestDates_FullMonthAndDashed(t *testing.T) {
	dates := Dates("Due January 15, 2024 or 03-04-2024")
	assert.Contains(t, dates, "January 15, 2024")
	assert.Contains(t, dates, "03-04-2024")
}

func TestNumbers(t *testing.T) {
	numbers := Numbers("The price is $29.99 for 5 items, total 149.95")
	assert.Contains(t, numbers, "29.99")
	assert.Contains(t, numbers, "5")
	assert.Contains(t, numbers, "149.95")
}

func TestNumbers_ThousandsAndNegative(t *testing.T) {
	numbers := Numbers("balance -42 and revenue 1,234,567.89")
	assert.Contains(t, numbers, "-42")
	assert.Contains(t, numbers, "1,234,567.89")
}

func TestNumbers_DatesNotSplit(t *testing.T) {
	// A date must be consumed whole, not re-extracted as 3, 4 and 2024.
	numbers := Numbers("Invoice dated 03/04/2024 totals 99.50")
	assert.Equal(t, []string{"99.50"}, numbers)
}

func TestNumbers_PhonesNotSplit(t *testing.T) {
	numbers := Numbers("call 555-123-4567 about order 42")
	assert.Equal(t, []string{"42"}, numbers)
}

func TestURLs(t *testing.T) {
	urls := URLs("Visit https://example.com or http://test.org for more info")
	assert.Equal(t, []string{"https://example.com", "http://test.org"}, urls)
}

func TestURLs_BareWWW(t *testing.T) {
	urls := URLs("see www.example.com/page today")
	assert.Equal(t, []string{"www.example.com/page"}, urls)
}

func TestExtract_EmailPhone(t *testing.T) {
	data := Extract("Contact john@example.com or call (555) 123-4567", domain.ExtractionEmailPhone)
	assert.Len(t, data, 2)
	assert.Equal(t, []string{"john@example.com"}, data[domain.CategoryEmails])
	assert.Equal(t, []string{"(555) 123-4567"}, data[domain.CategoryPhoneNumbers])
}

func TestExtract_SingleCategory(t *testing.T) {
	data := Extract("Meeting on 12/25/2023", domain.ExtractionDates)
	assert.Len(t, data, 1)
	assert.Equal(t, []string{"12/25/2023"}, data[domain.CategoryDates])
}

func TestExtract_All(t *testing.T) {
	text := "Email support@company.com, call 555-123-4567, visit https://company.com on 01/01/2024"
	data := Extract(text, domain.ExtractionAll)

	assert.Len(t, data, 5)
	assert.Equal(t, []string{"support@company.com"}, data[domain.CategoryEmails])
	assert.Equal(t, []string{"555-123-4567"}, data[domain.CategoryPhoneNumbers])
	assert.Equal(t, []string{"01/01/2024"}, data[domain.CategoryDates])
	assert.Equal(t, []string{"https://company.com"}, data[domain.CategoryURLs])
	assert.Empty(t, data[domain.CategoryNumbers])
}

func TestExtract_EmptyCategoriesAreNotNil(t *testing.T) {
	data := Extract("no extractable content here", domain.ExtractionAll)
	for _, key := range []string{
		domain.CategoryEmails,
		domain.CategoryPhoneNumbers,
		domain.CategoryDates,
		domain.CategoryNumbers,
		domain.CategoryURLs,
	} {
		assert.NotNil(t, data[key], "category %s", key)
		assert.Empty(t, data[key], "category %s", key)
	}
}

func TestExtract_PreservesOrderAndDuplicates(t *testing.T) {
	data := Extract("b@x.com then a@x.com then b@x.com", domain.ExtractionEmailPhone)
	assert.Equal(t, []string{"b@x.com", "a@x.com", "b@x.com"}, data[domain.CategoryEmails])
}
