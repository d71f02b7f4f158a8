package crdesc

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PrepareGeoJSON returns feature collection with descriptions attached to intersection's geometries
func PrepareGeoJSON(intersection *Intersection, description *Description) (*geojson.FeatureCollection, error) {
	features, err := collectFeatures(intersection, description)
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, feature := range features {
		geometry, err := prepareGeoJSONGeometry(feature.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't prepare geometry of %s '%s'", feature.Kind, feature.ID)
		}
		f := geojson.NewFeature(geometry)
		if feature.Kind == FEATURE_CROSSROADS {
			f.SetProperty("id", nil)
		} else {
			f.SetProperty("id", feature.ID)
		}
		f.SetProperty("type", feature.Kind)
		switch feature.Kind {
		case FEATURE_BRANCH, FEATURE_WAY:
			f.SetProperty("name", feature.Name)
			if feature.Kind == FEATURE_BRANCH {
				f.SetProperty("description", feature.Description)
			}
			f.SetProperty("left_sidewalk", feature.Sidewalks[0])
			f.SetProperty("right_sidewalk", feature.Sidewalks[1])
			f.SetProperty("left_island", feature.Islands[0])
			f.SetProperty("right_island", feature.Islands[1])
		case FEATURE_CROSSING:
			f.SetProperty("description", feature.Description)
			f.SetProperty("length_meters", feature.LengthMeters)
		default:
			f.SetProperty("description", feature.Description)
		}
		fc.AddFeature(f)
	}
	return fc, nil
}

// ExportGeoJSON writes GeoJSON feature collection of described intersection
func ExportGeoJSON(w io.Writer, intersection *Intersection, description *Description) error {
	fc, err := PrepareGeoJSON(intersection, description)
	if err != nil {
		return errors.Wrap(err, "Can't prepare features")
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal features")
	}
	_, err = w.Write(b)
	if err != nil {
		return errors.Wrap(err, "Can't write features")
	}
	return nil
}

func prepareGeoJSONGeometry(geometry orb.Geometry) (*geojson.Geometry, error) {
	switch g := geometry.(type) {
	case orb.Point:
		return geojson.NewPointGeometry([]float64{g.Lon(), g.Lat()}), nil
	case orb.LineString:
		pts := make([][]float64, len(g))
		for i := range g {
			pts[i] = []float64{g[i].Lon(), g[i].Lat()}
		}
		return geojson.NewLineStringGeometry(pts), nil
	}
	return nil, errors.Errorf("Unsupported geometry type '%s'", geometry.GeoJSONType())
}

// prepareGeoJSONString returns GeoJSON representation of the geometry
func prepareGeoJSONString(geometry orb.Geometry) (string, error) {
	g, err := prepareGeoJSONGeometry(geometry)
	if err != nil {
		return "", err
	}
	b, err := g.MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert geometry to geojson format")
	}
	return string(b), nil
}
