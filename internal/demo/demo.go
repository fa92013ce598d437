package demo

import (
	"context"
	"io"
	"primobs/internal/config"
	"primobs/pkg/domain"
	"primobs/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure a demonstration run.
type Options struct {
	// TenantID is the tenant the pack is meant for.
	TenantID domain.TenantID
	// PackID is the pack being assigned.
	PackID domain.PackID
	// Format is config.FormatText or config.FormatJSON.
	Format string
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) (Options, error) {
	tenantID, err := domain.ParseTenantID(cfg.Demo.TenantID)
	if err != nil {
		return Options{}, err
	}
	packID, err := domain.ParsePackID(cfg.Demo.PackID)
	if err != nil {
		return Options{}, err
	}

	return Options{TenantID: tenantID, PackID: packID, Format: cfg.Output.Format}, nil
}

// Demonstrator prints the primitive obsession demonstration.
type Demonstrator struct {
	out      io.Writer
	registry Registry
	legacy   LegacyRegistry
	options  Options
}

// New returns a Demonstrator writing to out.
func New(out io.Writer, registry Registry, legacy LegacyRegistry, options Options) *Demonstrator {
	return &Demonstrator{
		out:      out,
		registry: registry,
		legacy:   legacy,
		options:  options,
	}
}

// Run performs the demonstration and writes it to the output. It fails only
// when the output cannot be written or an embedded snippet is unreadable.
func (d *Demonstrator) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx,
		zap.Stringer("tenantId", d.options.TenantID),
		zap.Stringer("packId", d.options.PackID))

	report, err := d.Build(ctx)
	if err != nil {
		return err
	}
	report.Types = inspectedTypes()

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "rendering report",
			zap.String("format", d.options.Format),
			zap.Int("sections", len(report.Sections)),
			zap.Int("types", len(report.Types)))
	}

	return d.render(report)
}

// Inspect writes only the type inspection table.
func (d *Demonstrator) Inspect(_ context.Context) error {
	return d.render(Report{Types: inspectedTypes()})
}

// Build runs both assignment APIs and collects the outcome of each call.
func (d *Demonstrator) Build(ctx context.Context) (Report, error) {
	legacy, err := d.legacySection(ctx)
	if err != nil {
		return Report{}, err
	}
	nominal, err := d.nominalSection(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		TenantID: d.options.TenantID,
		PackID:   d.options.PackID,
		Sections: []Section{legacy, nominal},
	}, nil
}

func (d *Demonstrator) legacySection(ctx context.Context) (Section, error) {
	tenant := uuid.UUID(d.options.TenantID)
	pack := uuid.UUID(d.options.PackID)

	right := d.legacy.AssignRaw(ctx, tenant, pack)
	swapped := d.legacy.AssignRaw(ctx, pack, tenant)

	snippetCall, diags, err := checkEmbedded(legacySnippet)
	if err != nil {
		return Section{}, err
	}

	section := Section{
		Title:     "Raw identifiers",
		Signature: "AssignRaw(ctx context.Context, tenantID, packID uuid.UUID) domain.PackAssignment",
		Calls: []Call{
			d.executed("AssignRaw(ctx, tenant, pack)", right),
			d.executed("AssignRaw(ctx, pack, tenant)", swapped),
			{Code: snippetCall, Compiles: len(diags) == 0, Diagnostics: diags},
		},
		Summary: "Both parameters are uuid.UUID, so the swapped call compiles and runs without complaint.",
	}
	logger.Debug(ctx, "legacy registry accepted swapped identifiers",
		zap.Bool("correct", section.Calls[1].Correct))

	return section, nil
}

func (d *Demonstrator) nominalSection(ctx context.Context) (Section, error) {
	right := d.registry.Assign(ctx, d.options.TenantID, d.options.PackID)
	// d.registry.Assign(ctx, d.options.PackID, d.options.TenantID) does not compile;
	// the embedded snippet shows the diagnostic.

	snippetCall, diags, err := checkEmbedded(nominalSnippet)
	if err != nil {
		return Section{}, err
	}

	return Section{
		Title:     "Nominal identifiers",
		Signature: "Assign(ctx context.Context, tenantID domain.TenantID, packID domain.PackID) domain.PackAssignment",
		Calls: []Call{
			d.executed("Assign(ctx, tenant, pack)", right),
			{Code: snippetCall, Compiles: len(diags) == 0, Diagnostics: diags},
		},
		Summary: "TenantID and PackID share a representation but not a type; the swapped call never reaches runtime.",
	}, nil
}

func (d *Demonstrator) executed(code string, a domain.PackAssignment) Call {
	return Call{
		Code:     code,
		Compiles: true,
		Result:   &a,
		Correct:  a.TenantID == d.options.TenantID && a.PackID == d.options.PackID,
	}
}

func (d *Demonstrator) render(r Report) error {
	if d.options.Format == config.FormatJSON {
		return renderJSON(d.out, r)
	}

	return renderText(d.out, r)
}

func inspectedTypes() []TypeInfo {
	return InspectAll(uuid.UUID{}, "", domain.TenantID{}, domain.PackID{})
}
