// Package dataset loads the social network and its side tables from JSON,
// TOML or YAML and adapts them to the algorithm packages.
//
// A dataset holds users, directed weighted connections, front-page
// publications with the page capacity, and groups with candidate
// administrators:
//
//	{
//	  "capacity": 100,
//	  "users": [{"id": 1, "name": "Ana"}],
//	  "connections": [{"from": 1, "to": 2, "weight": 3}],
//	  "publications": [{"id": 1, "likes": 4, "comments": 2, "size": 30}],
//	  "groups": [{"id": 1, "name": "Go"}],
//	  "administrators": [{"id": 1, "name": "Torres", "efficiency": [90]}]
//	}
//
// Connections to undeclared users are dropped and logged, never fatal.
// Files are read through afero so callers can substitute an in-memory fs.
package dataset
