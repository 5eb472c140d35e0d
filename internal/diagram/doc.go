// Package diagram draws simple diagram elements (boxes, containers, arrows,
// badges, dividers and wrapped text) onto a raster canvas.
//
// Calls mutate the canvas in the order they are made; there is no scene
// graph and no automatic placement.
//
//	c := diagram.NewCanvas(960, 600, nil)
//	fonts := diagram.LoadFonts()
//	c.DrawBox(50, 50, 200, 60, diagram.BoxStyle{Label: "My Box", Font: fonts.Medium})
package diagram
