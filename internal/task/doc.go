// Package task defines the task value types and their validation rules.
//
// A task is persisted as:
//
//	{
//	  "id": 1,
//	  "description": "Buy groceries",
//	  "status": "todo",
//	  "created_at": "2024-01-01T00:00:00Z",
//	  "updated_at": "2024-01-01T00:00:00Z"
//	}
//
// # Status Values
//
//   - "todo": Task is pending
//   - "in_progress": Task is currently being worked on
//   - "done": Task is complete
//
// # Timestamps
//
// Timestamps are stored in UTC. updated_at never moves below created_at or
// below its own previous value, so it is non-decreasing even if the wall
// clock steps backwards. Two changes inside the same clock tick may share a
// timestamp.
package task
