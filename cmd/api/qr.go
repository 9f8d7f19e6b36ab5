package main

import (
	"fmt"
	"net/http"
)

// exportQRPNGHandler godoc
//
//	@Summary		Export the menu QR code as PNG
//	@Description	PNG with the brand badge composited in; falls back to SVG when PNG rendering fails
//	@Tags			qr
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		500	{object}	map[string]string
//	@Router			/qr.png [get]
func (app *application) exportQRPNGHandler(w http.ResponseWriter, r *http.Request) {
	data, err := app.qrExporter.PNG()
	if err != nil {
		// degrade to the vector format instead of failing the export
		app.logger.Warnw("PNG export failed, serving SVG fallback", "error", err)
		app.exportQRSVGHandler(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.qrExporter.Filename("png")))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		app.logger.Warnw("failed to write PNG response", "error", err)
	}
}

// exportQRSVGHandler godoc
//
//	@Summary		Export the menu QR code as SVG
//	@Tags			qr
//	@Produce		html
//	@Success		200	{file}		binary
//	@Failure		500	{object}	map[string]string
//	@Router			/qr.svg [get]
func (app *application) exportQRSVGHandler(w http.ResponseWriter, r *http.Request) {
	data, err := app.qrExporter.SVG()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.qrExporter.Filename("svg")))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		app.logger.Warnw("failed to write SVG response", "error", err)
	}
}
