// Package cmd provides the command line interface for deployctl
/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/deployctl/internal/api"
)

const (
	postDeploymentFileType = "post_deployment"
	postDeploymentFileName = "post_deployment.sh"
)

// EditPostDeploymentDeps holds edit-post-deployment dependencies.
type EditPostDeploymentDeps struct {
	CommonDeps
	AppService  api.AppService
	FileManager FileManager
	Editor      EditorLauncher
}

// EditPostDeploymentCommand represents the edit-post-deployment command for deployctl CLI.
type EditPostDeploymentCommand struct{}

// NewEditPostDeploymentCommand creates a new EditPostDeploymentCommand.
func NewEditPostDeploymentCommand() *EditPostDeploymentCommand {
	return &EditPostDeploymentCommand{}
}

// GetCobraCommand returns the cobra command for editing an app's post-deployment script.
func (c *EditPostDeploymentCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-post-deployment <appId>",
		Short: "Edit the post-deployment script of an app",
		Long: `Edit the post-deployment script of an app.

The current script is downloaded to a temporary file and opened in your editor
(the configured editor, $VISUAL, $EDITOR or vi). When the editor exits the file
is uploaded back, whether or not it changed, and the temporary file is removed.

Examples:
  deployctl edit-post-deployment svc-42
  EDITOR="code --wait" deployctl edit-post-deployment svc-42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if app == nil {
				return fmt.Errorf("application not initialized")
			}
			deps := c.buildDeps(app)
			c.Run(cmd.Context(), deps, args[0])
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// buildDeps creates production dependencies for the edit-post-deployment command.
func (c *EditPostDeploymentCommand) buildDeps(app *App) EditPostDeploymentDeps {
	return EditPostDeploymentDeps{
		CommonDeps:  NewRootDeps(app),
		AppService:  app.AppService,
		FileManager: app.FileManager,
		Editor:      app.Editor,
	}
}

// Run edits the post-deployment script of appID. Failures are logged, not returned,
// so a failed edit never changes the process exit status.
func (c *EditPostDeploymentCommand) Run(ctx context.Context, deps EditPostDeploymentDeps, appID string) {
	if err := c.EditFile(ctx, deps, appID, postDeploymentFileType, postDeploymentFileName); err != nil {
		deps.Logger.Error("Error during post-deployment file editing:", "error", err.Error())
	}
}

// EditFile downloads fileType of appID to a temporary file, opens it in the
// editor, then uploads the file's content. The temporary file is removed on
// every return path.
func (c *EditPostDeploymentCommand) EditFile(ctx context.Context, deps EditPostDeploymentDeps, appID, fileType, fileName string) error {
	tempFilePath := deps.FileManager.TemporaryFilePath(fileName, appID)
	defer deps.FileManager.CleanupFile(tempFilePath)

	deps.Logger.Info(fmt.Sprintf("Fetching %s file...", fileName))
	if err := deps.AppService.DownloadFile(ctx, appID, fileType, tempFilePath); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", fileName, err)
	}

	deps.Logger.Info(fmt.Sprintf("Opening %s file in default editor...", fileName))
	started := deps.Clock.Now()
	if err := deps.Editor.OpenFile(ctx, tempFilePath); err != nil {
		return fmt.Errorf("failed to open %s in editor: %w", fileName, err)
	}
	deps.Logger.Debug("Editor session ended", "path", tempFilePath, "duration", deps.Clock.Since(started))

	deps.Logger.Info(fmt.Sprintf("Uploading the edited %s file...", fileName))
	content, err := deps.FileManager.ReadFile(tempFilePath)
	if err != nil {
		return fmt.Errorf("failed to read edited %s: %w", fileName, err)
	}
	if err := deps.AppService.UploadFile(ctx, appID, fileType, content); err != nil {
		return fmt.Errorf("failed to upload %s: %w", fileName, err)
	}

	deps.Logger.Success(fmt.Sprintf("%s file updated successfully!", fileName))
	return nil
}
