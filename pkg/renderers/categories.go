package renderers

import (
	"github.com/tanepiper/teskooano/pkg/celestial"
	"github.com/tanepiper/teskooano/pkg/lensing"
	"github.com/tanepiper/teskooano/pkg/lod"
	"github.com/tanepiper/teskooano/pkg/render"
)

// Default category configurations. Every category shares the one Body
// implementation; these values are the only thing that differs between a
// star renderer and a moon renderer.
var defaultConfigs = map[celestial.Category]CategoryConfig{
	celestial.CategoryStar: {
		Category:  celestial.CategoryStar,
		BaseColor: render.ColorSun,
		Build: lod.BuildOptions{
			LightIntensity: 1.0,
		},
	},
	celestial.CategoryPlanet: {
		Category:  celestial.CategoryPlanet,
		BaseColor: render.ColorRock,
	},
	celestial.CategoryMoon: {
		Category:  celestial.CategoryMoon,
		BaseColor: render.ColorIce,
	},
	celestial.CategoryRing: {
		Category:  celestial.CategoryRing,
		BaseColor: render.ColorDust,
	},
	celestial.CategoryParticleField: {
		Category:  celestial.CategoryParticleField,
		BaseColor: render.ColorDust,
	},
	celestial.CategoryBlackHole: {
		Category:  celestial.CategoryBlackHole,
		BaseColor: render.ColorBlack,
		Lensing:   true,
		LensingConfig: lensing.Config{
			RadiusFactor: 2.5,
		},
	},
	celestial.CategoryNeutronStar: {
		Category:  celestial.CategoryNeutronStar,
		BaseColor: render.ColorWhite,
		Lensing:   true,
		Build: lod.BuildOptions{
			LightIntensity: 1.2,
		},
		LensingConfig: lensing.Config{
			RadiusFactor: 1.8,
		},
	},
}

// ConfigFor returns the default configuration for a category. Unknown
// categories get a neutral planet-like config so a renderer can always
// be built.
func ConfigFor(cat celestial.Category) CategoryConfig {
	if cfg, ok := defaultConfigs[cat]; ok {
		return cfg
	}
	return CategoryConfig{
		Category:  cat,
		BaseColor: render.ColorRock,
	}
}
