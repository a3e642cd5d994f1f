package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/WrapCut/internal/importer"
	"github.com/piwi3910/WrapCut/internal/model"
	"github.com/piwi3910/WrapCut/internal/project"
)

var (
	templateDescription string
	templateJobName     string
)

// templateCmd manages reusable panel sets
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage reusable job templates",
	Long: `Templates store the panel set of a vehicle the shop wraps repeatedly,
so a new job can start from it instead of re-measuring.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateSaveCmd = &cobra.Command{
	Use:   "save NAME FILE",
	Short: "Save the panels of a job or panel list as a template",
	Args:  cobra.ExactArgs(2),
	RunE:  runTemplateSave,
}

var templateApplyCmd = &cobra.Command{
	Use:   "apply NAME OUTPUT",
	Short: "Create a new job file from a template",
	Long: `Writes a new job built from the named template. The panels get fresh
IDs; material and price fall back to the config defaults.

Example:
  wrapcut template apply "Transit HR" acme-van-3.yaml --job-name "Acme van 3"`,
	Args: cobra.ExactArgs(2),
	RunE: runTemplateApply,
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateRemove,
}

func init() {
	templateSaveCmd.Flags().StringVar(&templateDescription, "description", "", "Template description")
	templateSaveCmd.Flags().Float64Var(&dxfScale, "dxf-scale", importer.ScaleInches, "Inches per DXF drawing unit")
	templateApplyCmd.Flags().StringVar(&templateJobName, "job-name", "", "Name of the new job (default: template name)")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateApplyCmd)
	templateCmd.AddCommand(templateRemoveCmd)
}

func loadTemplateStore() (model.TemplateStore, error) {
	store, err := project.LoadTemplates(templatesPath())
	if err != nil {
		return model.TemplateStore{}, fmt.Errorf("failed to load templates: %w", err)
	}
	return store, nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	store, err := loadTemplateStore()
	if err != nil {
		return err
	}
	if len(store.Templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates saved")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVEHICLE\tMATERIAL\tPANELS\tUPDATED")
	for _, t := range store.Templates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.Name, t.Vehicle, t.Material, len(t.Panels), t.UpdatedAt)
	}
	return w.Flush()
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	name, file := args[0], args[1]

	job, err := loadJob(file)
	if err != nil {
		return err
	}
	store, err := loadTemplateStore()
	if err != nil {
		return err
	}

	store.Add(model.NewJobTemplate(name, templateDescription, job))
	if err := project.SaveTemplates(templatesPath(), store); err != nil {
		return fmt.Errorf("failed to save templates: %w", err)
	}
	logger.Info("Saved template", zap.String("name", name), zap.Int("panels", len(job.Panels)))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q with %d panels\n", name, len(job.Panels))
	return nil
}

func runTemplateApply(cmd *cobra.Command, args []string) error {
	name, out := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := loadTemplateStore()
	if err != nil {
		return err
	}
	t := store.FindByName(name)
	if t == nil {
		return fmt.Errorf("template %q not found", name)
	}

	jobName := templateJobName
	if jobName == "" {
		jobName = t.Name
	}
	job := t.ToJob(jobName)
	cfg.ApplyToJob(&job)

	if err := project.SaveJob(out, job); err != nil {
		return err
	}
	logger.Info("Created job from template", zap.String("template", name), zap.String("path", out))
	fmt.Fprintf(cmd.OutOrStdout(), "Created job %q from template %q at %s\n", job.Name, name, out)
	return nil
}

func runTemplateRemove(cmd *cobra.Command, args []string) error {
	store, err := loadTemplateStore()
	if err != nil {
		return err
	}
	t := store.FindByName(args[0])
	if t == nil {
		return fmt.Errorf("template %q not found", args[0])
	}
	store.Remove(t.ID)
	if err := project.SaveTemplates(templatesPath(), store); err != nil {
		return fmt.Errorf("failed to save templates: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed template %q\n", args[0])
	return nil
}
