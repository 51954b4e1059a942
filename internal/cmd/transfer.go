package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/options"
	"github.com/famproperties/s3cognito/options/delete"
	"github.com/famproperties/s3cognito/region"
)

func (a *app) uploadCmd() *cobra.Command {
	var (
		key, contentType string
		progress         bool
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a local file and print its public URL",
		Long: `Upload a local file to the bucket and print the object's public URL.
Without --key the object is named IMG<ddMMyyyy><millis>jpeg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := a.newAdapter(cmd)
			if err != nil {
				return err
			}
			if key == "" {
				key = s3cognito.GenerateKey(time.Now())
			}
			req := a.request(s3cognito.Upload, args[0], key)
			req.ContentType = contentType

			o, err := wait(cmd.Context(), adapter.StartUpload(cmd.Context(), req), progress, cmd.ErrOrStderr(), "uploading")
			if err != nil {
				return err
			}
			return printOutcome(cmd, o)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content type (inferred from the key when empty)")
	cmd.Flags().BoolVarP(&progress, "progress", "P", false, "Show a progress bar")
	return cmd
}

func (a *app) downloadCmd() *cobra.Command {
	var progress bool

	cmd := &cobra.Command{
		Use:   "download KEY FILE",
		Short: "Download an object to a local file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := a.newAdapter(cmd)
			if err != nil {
				return err
			}
			h := adapter.StartDownload(cmd.Context(), a.request(s3cognito.Download, args[1], args[0]))
			o, err := wait(cmd.Context(), h, progress, cmd.ErrOrStderr(), "downloading")
			if err != nil {
				return err
			}
			return printOutcome(cmd, o)
		},
	}
	cmd.Flags().BoolVarP(&progress, "progress", "P", false, "Show a progress bar")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var (
		confirm bool
		version string
	)

	cmd := &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete an object",
		Long: `Delete an object. Success is reported as soon as the delete is issued; the real
result follows once the background delete finishes. Use --confirm to wait for it instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := a.newAdapter(cmd)
			if err != nil {
				return err
			}

			var opts []options.DeleteOption
			if confirm {
				opts = append(opts, delete.WithConfirm())
			}
			if version != "" {
				opts = append(opts, delete.WithVersion(version))
			}

			h := adapter.StartDelete(cmd.Context(), a.request(s3cognito.Delete, "", args[0]), opts...)
			o, err := h.Wait(cmd.Context())
			if err != nil {
				return err
			}
			if err := printOutcome(cmd, o); err != nil {
				return err
			}

			if deleted := h.Deleted(); deleted != nil {
				if background, ok := <-deleted; ok && !background.OK() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), gray("background delete:"), background.Failure.Category.Code(), background.Failure.Message)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Wait for the delete and report its real outcome")
	cmd.Flags().StringVar(&version, "version", "", "Delete this object version")
	return cmd
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the region names accepted by --region and the configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, r := range region.All() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", r, gray(r.Code()))
			}
		},
	}
}
