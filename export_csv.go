package crdesc

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportCSV writes described features as ';'-separated rows: id;type;name;description;length_meters;geom.
// Geometry is WKT or GeoJSON depending on geomFormat.
func ExportCSV(w io.Writer, intersection *Intersection, description *Description, geomFormat string) error {
	if geomFormat != GEOMETRY_WKT && geomFormat != GEOMETRY_GEOJSON {
		return errors.Errorf("Unsupported geometry format '%s'", geomFormat)
	}
	features, err := collectFeatures(intersection, description)
	if err != nil {
		return errors.Wrap(err, "Can't prepare features")
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err = writer.Write([]string{"id", "type", "name", "description", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, feature := range features {
		geom := ""
		switch geomFormat {
		case GEOMETRY_WKT:
			geom = wkt.MarshalString(feature.Geometry)
		case GEOMETRY_GEOJSON:
			geom, err = prepareGeoJSONString(feature.Geometry)
			if err != nil {
				return errors.Wrapf(err, "Can't prepare geometry of %s '%s'", feature.Kind, feature.ID)
			}
		}
		err = writer.Write([]string{
			feature.ID,
			feature.Kind,
			feature.Name,
			feature.Description,
			fmt.Sprintf("%f", feature.LengthMeters),
			geom,
		})
		if err != nil {
			return errors.Wrapf(err, "Can't write %s '%s'", feature.Kind, feature.ID)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "Can't flush rows")
	}
	return nil
}
