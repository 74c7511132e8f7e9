package mapview

const (
	DefaultCenterLatitude  = -32.8833
	DefaultCenterLongitude = 27.8333
	DefaultZoom            = 8
	FocusZoom              = 12
)

// View es el encuadre del mapa.
type View struct {
	CenterLatitude  float64
	CenterLongitude float64
	Zoom            float64
}

func DefaultView() View {
	return View{
		CenterLatitude:  DefaultCenterLatitude,
		CenterLongitude: DefaultCenterLongitude,
		Zoom:            DefaultZoom,
	}
}

// Focus centra el mapa sobre una ubicación con zoom cercano.
func (v View) Focus(l Location) View {
	return View{
		CenterLatitude:  l.Latitude,
		CenterLongitude: l.Longitude,
		Zoom:            FocusZoom,
	}
}
