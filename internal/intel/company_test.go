package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func TestCompanyIntel_BlankNameReturnsNil(t *testing.T) {
	assert.Nil(t, CompanyIntel("", "some JD text"))
	assert.Nil(t, CompanyIntel("   ", "some JD text"))
}

func TestCompanyIntel_KnownEnterprise(t *testing.T) {
	intel := CompanyIntel("Infosys", "")
	require.NotNil(t, intel)

	assert.Equal(t, "Infosys", intel.CompanyName)
	assert.Equal(t, types.SizeEnterprise, intel.SizeCategory.Value)
	assert.Equal(t, "Enterprise (2000+)", intel.SizeCategory.Label)
	assert.Equal(t, focusEnterprise, intel.TypicalHiringFocus)
}

func TestCompanyIntel_EnterpriseMatchEitherDirection(t *testing.T) {
	// Entry is a substring of the name.
	amazon := CompanyIntel("Amazon Web Services India", "")
	require.NotNil(t, amazon)
	assert.Equal(t, types.SizeEnterprise, amazon.SizeCategory.Value)

	// Name is a substring of an entry ("tata consultancy").
	tata := CompanyIntel("Tata", "")
	require.NotNil(t, tata)
	assert.Equal(t, types.SizeEnterprise, tata.SizeCategory.Value)
}

func TestCompanyIntel_UnknownCompanyIsStartup(t *testing.T) {
	intel := CompanyIntel("Pixelgrove Labs", "")
	require.NotNil(t, intel)

	assert.Equal(t, types.SizeStartup, intel.SizeCategory.Value)
	assert.Equal(t, "Startup (<200)", intel.SizeCategory.Label)
	assert.Equal(t, focusStartup, intel.TypicalHiringFocus)
}

func TestCompanyIntel_CaseInsensitiveMatch(t *testing.T) {
	intel := CompanyIntel("GOLDMAN SACHS", "")
	require.NotNil(t, intel)
	assert.Equal(t, types.SizeEnterprise, intel.SizeCategory.Value)
}

func TestCompanyIntel_IndustryFromJDText(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		jd       string
		industry string
	}{
		{"finance keyword", "Acme", "We build trading systems for banking clients", "Financial Services"},
		{"retail keyword", "Acme", "Large ecommerce platform", "Retail"},
		{"healthcare keyword", "Acme", "Digital health records product", "Healthcare"},
		{"logistics keyword", "Acme", "Supply chain and logistics software", "Manufacturing & Logistics"},
		{"default", "Acme", "General software development", "Technology Services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intel := CompanyIntel(tt.company, tt.jd)
			require.NotNil(t, intel)
			assert.Equal(t, tt.industry, intel.Industry)
		})
	}
}

func TestCompanyIntel_IndustryFromCompanyName(t *testing.T) {
	intel := CompanyIntel("Apex Trading", "")
	require.NotNil(t, intel)
	assert.Equal(t, "Financial Services", intel.Industry)
}

func TestCompanyIntel_FirstIndustryRuleWins(t *testing.T) {
	intel := CompanyIntel("Acme", "banking software for retail customers")
	require.NotNil(t, intel)
	assert.Equal(t, "Financial Services", intel.Industry)
}

func TestCompanyIntel_NameIsTrimmed(t *testing.T) {
	intel := CompanyIntel("  Wipro  ", "")
	require.NotNil(t, intel)
	assert.Equal(t, "Wipro", intel.CompanyName)
	assert.Equal(t, types.SizeEnterprise, intel.SizeCategory.Value)
}
