// Package domain holds what the stage and project packages share: the
// sentinel errors every layer classifies failures with, ValidationError and
// StorageError, and the Action contract used to undo partial drains.
package domain
