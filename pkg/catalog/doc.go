// Package catalog describes the models a chat application can talk to and
// groups them by the provider that serves them.
//
// The catalog itself is supplied by the host application through [Source];
// this package never fetches models on its own. [Group] turns a flat
// descriptor list into the provider → models view used by the selectors.
package catalog
