// Package model defines domain entities and data structures for the
// Mergington Activities API.
//
// The model package contains the Activity domain type, response payloads,
// and error definitions. Models are used across all layers of the
// application.
//
// # JSON Serialization
//
// Activities serialize without their name; the registry endpoint returns a
// JSON object keyed by activity name:
//
//	{
//	    "Chess Club": {
//	        "description": "...",
//	        "schedule": "...",
//	        "max_participants": 12,
//	        "participants": ["michael@mergington.edu"]
//	    }
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
