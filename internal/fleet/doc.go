// Package fleet defines the data model shared by the dashboard and its data
// sources: resource categories, rows of string cells, and the DataSource
// capability that loads them.
//
// # Categories
//
// Each Category has a fixed column schema:
//
//	CoreDevices  Name, Status, Last Status Update
//	ThingGroups  Name, ARN
//	Deployments  Name, Status, Created
//
// # Concurrency
//
// A DataSource is accessed by one refresh goroutine at a time and read by the
// event loop in between. Shared wraps a source with the mutex that enforces
// this, and TrySnapshot lets the event loop avoid waiting behind a slow
// remote fetch.
//
// # Errors
//
// Sources report failures as *SourceError classified by ErrorType:
//
//	var se *fleet.SourceError
//	if errors.As(err, &se) && se.Type == fleet.ErrTypeDispatch {
//	    // credentials or network
//	}
//
// The awsfleet subpackage implements DataSource on the AWS SDK. fleettest
// provides an in-memory source for tests.
package fleet
