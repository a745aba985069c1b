package markup

import "fmt"

// Canvas dimensions in pixels. Layouts are authored against a fixed-size
// absolute canvas; element coordinates are offsets within it.
const (
	CanvasWidth  = 1440
	CanvasHeight = 900
)

// baseStylesheet is the static boilerplate every compiled layout starts
// with: resets, canvas sizing, and per-component base classes. It is built
// once at init, not generated per request.
var baseStylesheet = fmt.Sprintf(`/* Generated by PageForge */
* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

.pf-canvas {
  position: relative;
  width: %dpx;
  height: %dpx;
  margin: 0 auto;
  overflow: hidden;
  background: #ffffff;
}

.pf-element img {
  max-width: 100%%;
  display: block;
}

.pf-form {
  display: flex;
  flex-direction: column;
  gap: 12px;
}

.pf-form-field {
  display: flex;
  flex-direction: column;
  gap: 4px;
}

.pf-form input,
.pf-form textarea,
.pf-form select {
  padding: 8px 10px;
  border: 1px solid #d1d5db;
  border-radius: 4px;
  font: inherit;
}

.pf-form button[type="submit"] {
  padding: 10px 16px;
  border: none;
  border-radius: 4px;
  background: #2563eb;
  color: #ffffff;
  cursor: pointer;
}

.pf-navbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0 24px;
  min-height: 56px;
}

.pf-navbar ul {
  display: flex;
  gap: 24px;
  list-style: none;
}

.pf-navbar a {
  text-decoration: none;
  color: inherit;
}

.pf-navbar-brand {
  font-weight: 700;
  font-size: 20px;
}

.pf-footer {
  display: flex;
  gap: 48px;
  padding: 24px;
}

.pf-footer ul {
  list-style: none;
}

.pf-footer a {
  text-decoration: none;
  color: inherit;
}

.pf-list {
  list-style: disc;
  padding-left: 20px;
}

.pf-grid {
  display: grid;
  grid-template-columns: repeat(2, 1fr);
  gap: 12px;
}

.pf-grid-cell {
  padding: 16px;
  border: 1px dashed #d1d5db;
  text-align: center;
}

.pf-card {
  padding: 16px;
  border: 1px solid #e5e7eb;
  border-radius: 8px;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
}

.pf-map {
  display: flex;
  align-items: center;
  justify-content: center;
  background: #e5e7eb;
  color: #6b7280;
  min-height: 120px;
}

`, CanvasWidth, CanvasHeight)
