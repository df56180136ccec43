// Package order provides the domain model for batch order processing.
//
// The package includes:
//   - Order: the aggregate holding identity, type, amount, flag, status and priority
//   - Type: the closed set of order categories driving distinct processing paths
//   - Status: the closed set of processing outcomes an order can end up in
//   - Priority: the processing priority, derived solely from the order amount
//   - PendingUpdate: a staged (id, status, priority) triple awaiting persistence
//
// Key business rules:
//   - Orders must have a positive identifier and valid status/priority values
//   - Orders can only be created through NewOrder or RestoreOrder
//   - Processing stages never mutate an order in place: Reclassified returns a
//     new snapshot, making the data flow at each stage boundary explicit
//   - Priority is high exactly when the amount exceeds the high-priority threshold
package order
