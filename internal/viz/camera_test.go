package viz

import (
	"math"
	"testing"

	"github.com/san-kum/nbodyviz/internal/series"
)

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera(5000, 25, 10)
	x, y, depth, ok := cam.Project(series.Position{}, 100, 80)
	if !ok || x != 50 || y != 40 || depth != 0 {
		t.Errorf("expected (50,40,0,true), got (%d,%d,%f,%v)", x, y, depth, ok)
	}
}

func TestCameraAxes(t *testing.T) {
	cam := NewCamera(1, 0, 0)

	x, y, _, ok := cam.Project(series.Position{Y: 1}, 100, 100)
	if !ok || x <= 50 || y != 50 {
		t.Errorf("+Y should project right of center, got (%d,%d)", x, y)
	}

	x, y, _, ok = cam.Project(series.Position{Z: 1}, 100, 100)
	if !ok || x != 50 || y >= 50 {
		t.Errorf("+Z should project above center, got (%d,%d)", x, y)
	}

	_, _, depth, _ := cam.Project(series.Position{X: 1}, 100, 100)
	if depth <= 0 {
		t.Errorf("+X should face the eye at azimuth 0, got depth %f", depth)
	}
}

func TestCameraCubeFitsEveryAngle(t *testing.T) {
	for el := -90.0; el <= 90; el += 15 {
		for az := 0.0; az < 360; az += 30 {
			cam := NewCamera(5000, el, az)
			for _, e := range cam.CubeEdges() {
				for _, p := range e {
					if _, _, _, ok := cam.Project(p, 160, 128); !ok {
						t.Fatalf("corner %v off surface at el=%.0f az=%.0f", p, el, az)
					}
				}
			}
		}
	}
}

func TestCameraRejectsNonFinite(t *testing.T) {
	cam := NewCamera(5000, 25, 10)
	if _, _, _, ok := cam.Project(series.Position{X: math.NaN()}, 10, 10); ok {
		t.Error("NaN position should not be visible")
	}
	if _, _, _, ok := cam.Project(series.Position{X: 1e12}, 10, 10); ok {
		t.Error("far away body should be clipped")
	}
}

func TestCameraClipsBehindViewer(t *testing.T) {
	cam := NewCamera(5000, 25, 10)
	if _, _, _, ok := cam.Project(series.Position{X: -1e12}, 100, 100); ok {
		t.Error("body far behind the cube should be clipped")
	}
}
