// Package hcl parses scenario files written in HCL.
package hcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"chiller-payback/adapters/scenario"
	"chiller-payback/internal/errors"
)

// Scanner parses scenario HCL into raw (unclamped) scenarios
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a new scenario scanner
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "method"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "plant"},
		{Type: "economics"},
		{Type: "option", LabelNames: []string{"role"}},
	},
}

var plantSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "chillers", Required: true},
		{Name: "capacity_per_chiller", Required: true},
		{Name: "load_factor", Required: true},
		{Name: "operating_months", Required: true},
		{Name: "days_per_month"},
	},
}

var economicsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "electricity_price", Required: true},
		{Name: "fx_rate", Required: true},
	},
}

var optionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "price_per_chiller", Required: true},
		{Name: "eer_full", Required: true},
		{Name: "iplv"},
		{Name: "eer_75"},
		{Name: "eer_50"},
		{Name: "eer_25"},
	},
}

// ScanFile parses a scenario file from disk
func (s *Scanner) ScanFile(path string) (*scenario.Raw, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read scenario file %s", path)
	}
	return s.Scan(src, path)
}

// Scan parses scenario HCL source. Unknown blocks and attributes are errors;
// a scenario must declare exactly one "higher" and one "lower" option.
func (s *Scanner) Scan(src []byte, filename string) (*scenario.Raw, error) {
	file, diags := s.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	raw := &scenario.Raw{}

	if attr, ok := content.Attributes["method"]; ok {
		method, err := stringValue(attr)
		if err != nil {
			return nil, err
		}
		raw.Method = method
	}

	var sawPlant, sawEconomics, sawHigher, sawLower bool

	for _, block := range content.Blocks {
		switch block.Type {
		case "plant":
			if err := s.scanPlant(block, &raw.Plant); err != nil {
				return nil, err
			}
			sawPlant = true

		case "economics":
			if err := s.scanEconomics(block, &raw.Economics); err != nil {
				return nil, err
			}
			sawEconomics = true

		case "option":
			role := block.Labels[0]
			switch role {
			case "higher":
				if err := s.scanOption(block, &raw.Higher); err != nil {
					return nil, err
				}
				sawHigher = true
			case "lower":
				if err := s.scanOption(block, &raw.Lower); err != nil {
					return nil, err
				}
				sawLower = true
			default:
				return nil, errors.Newf(errors.TypeScenario, "unknown option role %q (want \"higher\" or \"lower\")", role)
			}
		}
	}

	if !sawPlant {
		return nil, errors.Scenario("scenario is missing a plant block")
	}
	if !sawEconomics {
		return nil, errors.Scenario("scenario is missing an economics block")
	}
	if !sawHigher || !sawLower {
		return nil, errors.Scenario("scenario must declare one \"higher\" and one \"lower\" option")
	}

	return raw, nil
}

func (s *Scanner) scanPlant(block *hcl.Block, out *scenario.RawPlant) error {
	content, diags := block.Body.Content(plantSchema)
	if diags.HasErrors() {
		return diagError(diags)
	}

	var err error
	if out.Chillers, err = intAttr(content, "chillers"); err != nil {
		return err
	}
	if out.CapacityPerChillerKW, err = floatAttr(content, "capacity_per_chiller"); err != nil {
		return err
	}
	if out.LoadFactor, err = floatAttr(content, "load_factor"); err != nil {
		return err
	}
	if out.OperatingMonths, err = intAttr(content, "operating_months"); err != nil {
		return err
	}
	if _, ok := content.Attributes["days_per_month"]; ok {
		if out.DaysPerMonth, err = intAttr(content, "days_per_month"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanEconomics(block *hcl.Block, out *scenario.RawEconomics) error {
	content, diags := block.Body.Content(economicsSchema)
	if diags.HasErrors() {
		return diagError(diags)
	}

	var err error
	if out.ElectricityPrice, err = floatAttr(content, "electricity_price"); err != nil {
		return err
	}
	if out.FXRate, err = floatAttr(content, "fx_rate"); err != nil {
		return err
	}
	return nil
}

func (s *Scanner) scanOption(block *hcl.Block, out *scenario.RawOption) error {
	content, diags := block.Body.Content(optionSchema)
	if diags.HasErrors() {
		return diagError(diags)
	}

	var err error
	if out.PricePerChiller, err = floatAttr(content, "price_per_chiller"); err != nil {
		return err
	}
	if out.FullLoadEER, err = floatAttr(content, "eer_full"); err != nil {
		return err
	}

	// Optional ratings keep the zero sentinel; the scenario adapter converts
	// them into Rating values.
	optional := map[string]*float64{
		"iplv":   &out.IPLV,
		"eer_75": &out.EER75,
		"eer_50": &out.EER50,
		"eer_25": &out.EER25,
	}
	for name, dst := range optional {
		if _, ok := content.Attributes[name]; !ok {
			continue
		}
		if *dst, err = floatAttr(content, name); err != nil {
			return err
		}
	}
	return nil
}

func floatAttr(content *hcl.BodyContent, name string) (float64, error) {
	attr, ok := content.Attributes[name]
	if !ok {
		return 0, errors.Newf(errors.TypeScenario, "missing attribute %q", name)
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, diagError(diags)
	}
	if val.Type() != cty.Number {
		return 0, errors.Newf(errors.TypeScenario, "attribute %q must be a number, got %s", name, val.Type().FriendlyName())
	}

	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

func intAttr(content *hcl.BodyContent, name string) (int, error) {
	f, err := floatAttr(content, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func stringValue(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diagError(diags)
	}
	if val.Type() != cty.String {
		return "", errors.Newf(errors.TypeScenario, "attribute %q must be a string, got %s", attr.Name, val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError {
			msg := diag.Summary
			if diag.Detail != "" {
				msg += ": " + diag.Detail
			}
			if diag.Subject != nil {
				return errors.Newf(errors.TypeParsing, "%s:%d: %s", diag.Subject.Filename, diag.Subject.Start.Line, msg)
			}
			return errors.New(errors.TypeParsing, msg)
		}
	}
	return errors.New(errors.TypeParsing, "scenario parse failed")
}
