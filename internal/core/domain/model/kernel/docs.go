// Package kernel holds the value objects shared by every aggregate of the
// cash delivery domain:
//   - UUID: identifier wrapper that rejects the nil UUID
//   - GeoPoint: latitude/longitude pair with Haversine distance
//
// Both are immutable and must be created through their constructors.
package kernel
