// Package catalog contains the Catalog Registry's aggregate: MachineFamily and
// its default accessory links. A link is unique per (family, accessory) pair;
// linking the same pair again updates the existing link.
//
// Accessories themselves are inventory items and live in package inventory.
package catalog
