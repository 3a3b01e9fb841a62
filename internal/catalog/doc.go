// Package catalog reads the provider registry and classifies providers into
// processing categories.
//
// The registry stores one JSON object per line rather than a single document,
// so it is scanned lazily line by line; rescanning the file restarts the
// sequence. Classification by name suffix is a total function over a closed
// enum: every provider name yields a defined outcome, including the exempt
// VMware-cinder case and the unrecognized case.
package catalog
