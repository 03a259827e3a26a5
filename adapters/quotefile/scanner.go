// Package quotefile parses quote definitions written in HCL.
//
// A quote file has one quote block, one product block per traded
// product, and an optional settings block with organization rates:
//
//	quote {
//	  seller         = "TradeCo LLC"
//	  sale_type      = "domestic"
//	  delivery_basis = "CIF"
//	  exchange_rate  = 95.0
//	}
//
//	product "PUMP-100" {
//	  brand      = "Grundfos"
//	  unit_price = 1000.00
//	  quantity   = 10
//	  weight     = 25.5
//	}
package quotefile

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"tradequote/core/engine"
	"tradequote/core/settings"
	"tradequote/core/types"
	errs "tradequote/internal/errors"
)

// QuoteFile is the parsed form of a quote definition
type QuoteFile struct {
	// OrganizationID selects admin settings, empty for defaults
	OrganizationID string

	// Quote is the quote-level variable bag
	Quote types.Vars

	// Products are the per-product bags, in file order
	Products []types.Vars

	// Rates holds inline organization rates when a settings block is
	// present
	Rates *settings.Rates
}

// Request converts the parsed file into an engine request
func (q *QuoteFile) Request() engine.Request {
	return engine.Request{
		OrganizationID: q.OrganizationID,
		Quote:          q.Quote,
		Products:       q.Products,
	}
}

// Scanner parses quote definition files
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a scanner
func NewScanner() *Scanner {
	return &Scanner{parser: hclparse.NewParser()}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "quote"},
		{Type: "product", LabelNames: []string{"name"}},
		{Type: "settings"},
	},
}

// ScanFile reads and parses a quote definition from disk
func (s *Scanner) ScanFile(path string) (*QuoteFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Parsing("reading quote file", err)
	}
	return s.Scan(src, path)
}

// Scan parses a quote definition from raw bytes
func (s *Scanner) Scan(src []byte, filename string) (*QuoteFile, error) {
	hclFile, diags := s.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errs.Parsing("parsing quote file", diags)
	}

	content, _, diags := hclFile.Body.PartialContent(fileSchema)
	if diags.HasErrors() {
		return nil, errs.Parsing("reading quote file structure", diags)
	}

	out := &QuoteFile{Quote: types.Vars{}}

	for _, block := range content.Blocks {
		switch block.Type {
		case "quote":
			bag := extractVars(block.Body)
			if org := bag[types.Field("organization")]; org != nil {
				if id, ok := org.(string); ok {
					out.OrganizationID = id
				}
				delete(bag, types.Field("organization"))
			}
			for k, v := range bag {
				out.Quote[k] = v
			}

		case "product":
			bag := extractVars(block.Body)
			if len(block.Labels) > 0 && !bag.Has(types.FieldProductName) {
				bag[types.FieldProductName] = block.Labels[0]
			}
			out.Products = append(out.Products, bag)

		case "settings":
			out.Rates = extractRates(block.Body)
		}
	}

	if len(out.Products) == 0 {
		return nil, errs.Input("quote file defines no products")
	}

	return out, nil
}

// extractVars converts a block body into a loose variable bag.
// Expressions that cannot be evaluated statically become nil values, so
// they surface as mapper fallbacks rather than parse failures.
func extractVars(body hcl.Body) types.Vars {
	bag := types.Vars{}
	attrs, _ := body.JustAttributes()
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			bag[types.Field(name)] = nil
			continue
		}
		bag[types.Field(name)] = ctyToVar(val)
	}
	return bag
}

func extractRates(body hcl.Body) *settings.Rates {
	bag := extractVars(body)
	rates := settings.DefaultRates()

	assign := func(f types.Field, dst func(d interface{})) {
		if v := bag.Get(f); !types.IsEmpty(v) {
			dst(v)
		}
	}
	assign(types.FieldForexRiskRate, func(v interface{}) {
		if d, ok := toDecimal(v); ok {
			rates.ForexRiskRate = d
		}
	})
	assign(types.FieldFinancingCommissionRate, func(v interface{}) {
		if d, ok := toDecimal(v); ok {
			rates.FinancingCommissionRate = d
		}
	})
	assign(types.FieldDailyInterestRate, func(v interface{}) {
		if d, ok := toDecimal(v); ok {
			rates.DailyInterestRate = d
		}
	})
	return &rates
}
