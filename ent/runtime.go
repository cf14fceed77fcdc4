// Code generated by ent, DO NOT EDIT.

package ent

import (
	"planforge/ent/apicredential"
	"planforge/ent/dependency"
	"planforge/ent/feature"
	"planforge/ent/graphrun"
	"planforge/ent/prd"
	"planforge/ent/project"
	"planforge/ent/schema"
	"planforge/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apicredentialFields := schema.APICredential{}.Fields()
	_ = apicredentialFields
	// apicredentialDescProvider is the schema descriptor for provider field.
	apicredentialDescProvider := apicredentialFields[1].Descriptor()
	// apicredential.DefaultProvider holds the default value on creation for the provider field.
	apicredential.DefaultProvider = apicredentialDescProvider.Default.(string)
	// apicredential.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	apicredential.ProviderValidator = apicredentialDescProvider.Validators[0].(func(string) error)
	// apicredentialDescKeyHint is the schema descriptor for key_hint field.
	apicredentialDescKeyHint := apicredentialFields[3].Descriptor()
	// apicredential.KeyHintValidator is a validator for the "key_hint" field. It is called by the builders before save.
	apicredential.KeyHintValidator = apicredentialDescKeyHint.Validators[0].(func(string) error)
	// apicredentialDescCreatedAt is the schema descriptor for created_at field.
	apicredentialDescCreatedAt := apicredentialFields[4].Descriptor()
	// apicredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	apicredential.DefaultCreatedAt = apicredentialDescCreatedAt.Default.(func() time.Time)
	// apicredentialDescUpdatedAt is the schema descriptor for updated_at field.
	apicredentialDescUpdatedAt := apicredentialFields[5].Descriptor()
	// apicredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	apicredential.DefaultUpdatedAt = apicredentialDescUpdatedAt.Default.(func() time.Time)
	// apicredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	apicredential.UpdateDefaultUpdatedAt = apicredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// apicredentialDescID is the schema descriptor for id field.
	apicredentialDescID := apicredentialFields[0].Descriptor()
	// apicredential.DefaultID holds the default value on creation for the id field.
	apicredential.DefaultID = apicredentialDescID.Default.(func() uuid.UUID)
	dependencyFields := schema.Dependency{}.Fields()
	_ = dependencyFields
	// dependencyDescNote is the schema descriptor for note field.
	dependencyDescNote := dependencyFields[1].Descriptor()
	// dependency.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	dependency.NoteValidator = dependencyDescNote.Validators[0].(func(string) error)
	// dependencyDescCreatedAt is the schema descriptor for created_at field.
	dependencyDescCreatedAt := dependencyFields[2].Descriptor()
	// dependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	dependency.DefaultCreatedAt = dependencyDescCreatedAt.Default.(func() time.Time)
	// dependencyDescID is the schema descriptor for id field.
	dependencyDescID := dependencyFields[0].Descriptor()
	// dependency.DefaultID holds the default value on creation for the id field.
	dependency.DefaultID = dependencyDescID.Default.(func() uuid.UUID)
	featureFields := schema.Feature{}.Fields()
	_ = featureFields
	// featureDescTitle is the schema descriptor for title field.
	featureDescTitle := featureFields[1].Descriptor()
	// feature.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	feature.TitleValidator = func() func(string) error {
		validators := featureDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// featureDescNotes is the schema descriptor for notes field.
	featureDescNotes := featureFields[2].Descriptor()
	// feature.NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	feature.NotesValidator = featureDescNotes.Validators[0].(func(string) error)
	// featureDescCreatedAt is the schema descriptor for created_at field.
	featureDescCreatedAt := featureFields[5].Descriptor()
	// feature.DefaultCreatedAt holds the default value on creation for the created_at field.
	feature.DefaultCreatedAt = featureDescCreatedAt.Default.(func() time.Time)
	// featureDescUpdatedAt is the schema descriptor for updated_at field.
	featureDescUpdatedAt := featureFields[6].Descriptor()
	// feature.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feature.DefaultUpdatedAt = featureDescUpdatedAt.Default.(func() time.Time)
	// feature.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feature.UpdateDefaultUpdatedAt = featureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// featureDescID is the schema descriptor for id field.
	featureDescID := featureFields[0].Descriptor()
	// feature.DefaultID holds the default value on creation for the id field.
	feature.DefaultID = featureDescID.Default.(func() uuid.UUID)
	graphrunFields := schema.GraphRun{}.Fields()
	_ = graphrunFields
	// graphrunDescModel is the schema descriptor for model field.
	graphrunDescModel := graphrunFields[1].Descriptor()
	// graphrun.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	graphrun.ModelValidator = graphrunDescModel.Validators[0].(func(string) error)
	// graphrunDescUsedFallback is the schema descriptor for used_fallback field.
	graphrunDescUsedFallback := graphrunFields[2].Descriptor()
	// graphrun.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	graphrun.DefaultUsedFallback = graphrunDescUsedFallback.Default.(bool)
	// graphrunDescDroppedEdges is the schema descriptor for dropped_edges field.
	graphrunDescDroppedEdges := graphrunFields[3].Descriptor()
	// graphrun.DefaultDroppedEdges holds the default value on creation for the dropped_edges field.
	graphrun.DefaultDroppedEdges = graphrunDescDroppedEdges.Default.(int)
	// graphrunDescFeatureCount is the schema descriptor for feature_count field.
	graphrunDescFeatureCount := graphrunFields[4].Descriptor()
	// graphrun.DefaultFeatureCount holds the default value on creation for the feature_count field.
	graphrun.DefaultFeatureCount = graphrunDescFeatureCount.Default.(int)
	// graphrunDescEdgeCount is the schema descriptor for edge_count field.
	graphrunDescEdgeCount := graphrunFields[5].Descriptor()
	// graphrun.DefaultEdgeCount holds the default value on creation for the edge_count field.
	graphrun.DefaultEdgeCount = graphrunDescEdgeCount.Default.(int)
	// graphrunDescCreatedAt is the schema descriptor for created_at field.
	graphrunDescCreatedAt := graphrunFields[6].Descriptor()
	// graphrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphrun.DefaultCreatedAt = graphrunDescCreatedAt.Default.(func() time.Time)
	// graphrunDescID is the schema descriptor for id field.
	graphrunDescID := graphrunFields[0].Descriptor()
	// graphrun.DefaultID holds the default value on creation for the id field.
	graphrun.DefaultID = graphrunDescID.Default.(func() uuid.UUID)
	prdFields := schema.PRD{}.Fields()
	_ = prdFields
	// prdDescErrorMessage is the schema descriptor for error_message field.
	prdDescErrorMessage := prdFields[4].Descriptor()
	// prd.ErrorMessageValidator is a validator for the "error_message" field. It is called by the builders before save.
	prd.ErrorMessageValidator = prdDescErrorMessage.Validators[0].(func(string) error)
	// prdDescModel is the schema descriptor for model field.
	prdDescModel := prdFields[5].Descriptor()
	// prd.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	prd.ModelValidator = prdDescModel.Validators[0].(func(string) error)
	// prdDescCreatedAt is the schema descriptor for created_at field.
	prdDescCreatedAt := prdFields[6].Descriptor()
	// prd.DefaultCreatedAt holds the default value on creation for the created_at field.
	prd.DefaultCreatedAt = prdDescCreatedAt.Default.(func() time.Time)
	// prdDescUpdatedAt is the schema descriptor for updated_at field.
	prdDescUpdatedAt := prdFields[7].Descriptor()
	// prd.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prd.DefaultUpdatedAt = prdDescUpdatedAt.Default.(func() time.Time)
	// prd.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prd.UpdateDefaultUpdatedAt = prdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prdDescID is the schema descriptor for id field.
	prdDescID := prdFields[0].Descriptor()
	// prd.DefaultID holds the default value on creation for the id field.
	prd.DefaultID = prdDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = func() func(string) error {
		validators := projectDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[2].Descriptor()
	// project.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	project.DescriptionValidator = projectDescDescription.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = func() func(string) error {
		validators := userDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
