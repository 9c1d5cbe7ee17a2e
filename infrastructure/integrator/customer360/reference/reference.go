package reference

import (
	_ "embed"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vfg2006/customer360-api/internal/domain"
)

//go:embed business_units.yaml
var businessUnitsYAML []byte

type businessUnitFile struct {
	Subsidiaries []domain.BusinessUnit `yaml:"subsidiaries"`
}

var (
	loadOnce sync.Once
	units    []domain.BusinessUnit
	loadErr  error
)

// BusinessUnits returns the bundled business-unit catalogue.
func BusinessUnits() ([]domain.BusinessUnit, error) {
	loadOnce.Do(func() {
		var file businessUnitFile
		if err := yaml.Unmarshal(businessUnitsYAML, &file); err != nil {
			loadErr = errors.Wrap(err, "reference: parse business units")
			return
		}
		units = file.Subsidiaries
	})

	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]domain.BusinessUnit, len(units))
	copy(out, units)
	return out, nil
}
