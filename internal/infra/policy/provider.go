package policy

import (
	"context"
	"log/slog"
	"os"
	"time"

	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/pkg/config"
	"salon-scheduling/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPolicyFile = errs.New("invalid scheduling policy file")

// overridesFile is the on-disk shape of the per-tenant policy file:
//
//	tenants:
//	  0b8f...:
//	    min_advance: 2h
//	    timezone: Europe/Berlin
//	    block_client_double_booking: true
type overridesFile struct {
	Tenants map[string]tenantOverride `yaml:"tenants"`
}

// tenantOverride leaves unset fields at the salon-wide default.
type tenantOverride struct {
	MinAdvance               *string `yaml:"min_advance" validate:"omitempty,min=1"`
	MaxAdvance               *string `yaml:"max_advance" validate:"omitempty,min=1"`
	Timezone                 *string `yaml:"timezone" validate:"omitempty,min=1"`
	BlockClientDoubleBooking *bool   `yaml:"block_client_double_booking"`
}

// FilePolicyProvider resolves the scheduling policy of a tenant from the
// environment defaults and an optional YAML overrides file read at startup.
type FilePolicyProvider struct {
	defaults  scheduling.Policy
	overrides map[uuid.UUID]scheduling.Policy
}

func NewFilePolicyProvider(cfg config.SchedulingConfig) (*FilePolicyProvider, error) {
	defaults, err := DefaultsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	p := &FilePolicyProvider{
		defaults:  defaults,
		overrides: map[uuid.UUID]scheduling.Policy{},
	}
	if cfg.PolicyFile == "" {
		return p, nil
	}

	data, err := os.ReadFile(cfg.PolicyFile)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read scheduling policy file")
	}
	overrides, err := ParseOverrides(data, defaults)
	if err != nil {
		return nil, err
	}
	p.overrides = overrides
	slog.Info("scheduling policy overrides loaded", "file", cfg.PolicyFile, "tenants", len(overrides))
	return p, nil
}

// DefaultsFromConfig builds the salon-wide policy.
func DefaultsFromConfig(cfg config.SchedulingConfig) (scheduling.Policy, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return scheduling.Policy{}, errs.Mark(errs.Wrap(err, "unknown scheduling timezone"), scheduling.ErrInvalidPolicy)
	}
	p := scheduling.Policy{
		MinAdvance:                  cfg.MinAdvance,
		MaxAdvance:                  cfg.MaxAdvance,
		Location:                    loc,
		ClientDoubleBookingSeverity: severity(cfg.BlockClientDoubleBooking),
	}
	if err := p.Validate(); err != nil {
		return scheduling.Policy{}, errs.Wrap(err, "scheduling defaults")
	}
	return p, nil
}

// ParseOverrides decodes a policy file. A malformed tenant entry is skipped
// with a warning so that one bad tenant does not take the others down; a
// file that is not valid YAML fails as a whole.
func ParseOverrides(data []byte, defaults scheduling.Policy) (map[uuid.UUID]scheduling.Policy, error) {
	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to unmarshal scheduling policy file"), ErrInvalidPolicyFile)
	}

	validate := validator.New()
	out := make(map[uuid.UUID]scheduling.Policy, len(file.Tenants))
	for key, o := range file.Tenants {
		tenantID, err := uuid.Parse(key)
		if err != nil {
			slog.Warn("skipping policy override with invalid tenant id", "tenant", key, "error", err)
			continue
		}
		if err := validate.Struct(o); err != nil {
			slog.Warn("skipping malformed policy override", "tenant", key, "error", err)
			continue
		}
		p, err := o.apply(defaults)
		if err != nil {
			slog.Warn("skipping malformed policy override", "tenant", key, "error", err)
			continue
		}
		out[tenantID] = p
	}
	return out, nil
}

func (p *FilePolicyProvider) PolicyFor(ctx context.Context, tenantID uuid.UUID) (scheduling.Policy, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Policy{}, err
	}
	if override, ok := p.overrides[tenantID]; ok {
		return override, nil
	}
	return p.defaults, nil
}

func (o tenantOverride) apply(base scheduling.Policy) (scheduling.Policy, error) {
	p := base
	if o.MinAdvance != nil {
		d, err := time.ParseDuration(*o.MinAdvance)
		if err != nil {
			return scheduling.Policy{}, errs.Wrap(err, "min_advance")
		}
		p.MinAdvance = d
	}
	if o.MaxAdvance != nil {
		d, err := time.ParseDuration(*o.MaxAdvance)
		if err != nil {
			return scheduling.Policy{}, errs.Wrap(err, "max_advance")
		}
		p.MaxAdvance = d
	}
	if o.Timezone != nil {
		loc, err := time.LoadLocation(*o.Timezone)
		if err != nil {
			return scheduling.Policy{}, errs.Wrap(err, "timezone")
		}
		p.Location = loc
	}
	if o.BlockClientDoubleBooking != nil {
		p.ClientDoubleBookingSeverity = severity(*o.BlockClientDoubleBooking)
	}
	if err := p.Validate(); err != nil {
		return scheduling.Policy{}, err
	}
	return p, nil
}

func severity(block bool) scheduling.Severity {
	if block {
		return scheduling.SeverityError
	}
	return scheduling.SeverityWarning
}
