// Package icons derives Octicons sprite symbol identifiers from source
// filenames and assembles the Frappe symbol sprite.
//
// Source icons follow the Octicons naming convention
// "<name>[-fill]-<size>.svg". Only 24px icons are converted, and every symbol
// id is namespaced as "icon-octicon-<name>[-fill]-24" so the Frappe icon
// system can reference it with <use href="#...">.
package icons
