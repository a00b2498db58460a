// Package controls groups headless models of the map controls. Each subpackage takes the
// matching options from internal/config/controls, keeps the control's state and invokes
// its callbacks the way a rendering control would, without drawing anything.
package controls
