/*
Package delete consists of custom delete options

WithConfirm makes a single delete wait for the service's answer instead of reporting success
immediately. WithVersion removes one specific object version in a versioned bucket.

Usage

	import (
		"github.com/famproperties/s3cognito/options/delete"
	)

	func DeleteImage(ctx context.Context, a *transfer.Adapter, req s3cognito.Request) error {
		_, err := a.Delete(ctx, req, delete.WithConfirm())
		return err
	}
*/
package delete
