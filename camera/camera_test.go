package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on the layout area
	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	sx, sy := cam.WorldToScreen(1280, 720)
	if !near(sx, 640) || !near(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2.5)
	cam.Pan(300, -120)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestIdentityWhenViewportMatchesArea(t *testing.T) {
	cam := New(800, 600, 800, 600)

	wx, wy := cam.ScreenToWorld(123, 456)
	if !near(wx, 123) || !near(wy, 456) {
		t.Errorf("expected identity mapping, got (%f, %f)", wx, wy)
	}

	// At 1:1 the whole area is visible so panning has nowhere to go.
	cam.Pan(50, 50)
	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("expected pan to be clamped at center, got (%f, %f)", cam.X, cam.Y)
	}
}

func TestPanClampsToArea(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	cam.Pan(-10000, 10000)

	// Visible half extents at zoom 1 are (640, 360)
	if cam.X != 640 || cam.Y != 1080 {
		t.Errorf("expected camera clamped to (640, 1080), got (%f, %f)", cam.X, cam.Y)
	}
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX < 0 || minY < 0 || maxX > 2560 || maxY > 1440 {
		t.Errorf("view left the area: (%f,%f)-(%f,%f)", minX, minY, maxX, maxY)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// MinZoom should be min(1280/2560, 720/1440) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomFitsWholeArea(t *testing.T) {
	// Asymmetric area/viewport ratios
	cam := New(800, 600, 1600, 800)

	// MinZoom should be min(800/1600, 600/800) = min(0.5, 0.75) = 0.5
	if !near(cam.MinZoom, 0.5) {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(cam.MinZoom)
	visibleW := cam.ViewportW / cam.Zoom
	if !near(visibleW, cam.WorldW) {
		t.Errorf("at min zoom, visible width %f should equal area width %f", visibleW, cam.WorldW)
	}
}

func TestZoomAtKeepsCursorPoint(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	wx, wy := cam.ScreenToWorld(900, 200)
	cam.ZoomAt(900, 200, 2)

	sx, sy := cam.WorldToScreen(wx, wy)
	if !near(sx, 900) || !near(sy, 200) {
		t.Errorf("expected cursor point to stay at (900, 200), got (%f, %f)", sx, sy)
	}
	if cam.Zoom != 2 {
		t.Errorf("expected zoom 2, got %f", cam.Zoom)
	}
}

func TestResizeReclamps(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(0.5)
	if cam.Zoom != 1 {
		t.Fatalf("expected zoom floor 1 for matching sizes, got %f", cam.Zoom)
	}

	cam.Resize(640, 360, 640, 360)
	if cam.X != 320 || cam.Y != 180 {
		t.Errorf("expected camera recentered on smaller area, got (%f, %f)", cam.X, cam.Y)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Visible range in layout coords: (640, 360) to (1920, 1080)
	if !cam.IsVisible(1280, 720, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2.5)
	cam.Pan(-300, 200)

	cam.Reset()

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected position (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
