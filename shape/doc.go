// Package shape assembles polygon primitives into the units the
// placement search consumes: a Shape (an item's outer polygons plus
// its hole polygons, carrying opaque provenance) and ModelsToPlace
// (the parts-and-sheets assembly keyed by desired/available count).
package shape
