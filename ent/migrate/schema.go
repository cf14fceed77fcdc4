// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APICredentialsColumns holds the columns for the "api_credentials" table.
	APICredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeString, Size: 60, Default: "openai"},
		{Name: "encrypted_key", Type: field.TypeBytes},
		{Name: "key_hint", Type: field.TypeString, Nullable: true, Size: 8},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "api_credential_owner", Type: field.TypeUUID},
	}
	// APICredentialsTable holds the schema information for the "api_credentials" table.
	APICredentialsTable = &schema.Table{
		Name:       "api_credentials",
		Columns:    APICredentialsColumns,
		PrimaryKey: []*schema.Column{APICredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_credentials_users_owner",
				Columns:    []*schema.Column{APICredentialsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apicredential_provider_api_credential_owner",
				Unique:  true,
				Columns: []*schema.Column{APICredentialsColumns[1], APICredentialsColumns[6]},
			},
		},
	}
	// DependenciesColumns holds the columns for the "dependencies" table.
	DependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dependency_project", Type: field.TypeUUID},
		{Name: "dependency_source", Type: field.TypeUUID},
		{Name: "dependency_target", Type: field.TypeUUID},
	}
	// DependenciesTable holds the schema information for the "dependencies" table.
	DependenciesTable = &schema.Table{
		Name:       "dependencies",
		Columns:    DependenciesColumns,
		PrimaryKey: []*schema.Column{DependenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dependencies_projects_project",
				Columns:    []*schema.Column{DependenciesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "dependencies_features_source",
				Columns:    []*schema.Column{DependenciesColumns[4]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "dependencies_features_target",
				Columns:    []*schema.Column{DependenciesColumns[5]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dependency_dependency_project",
				Unique:  false,
				Columns: []*schema.Column{DependenciesColumns[3]},
			},
			{
				Name:    "dependency_dependency_source",
				Unique:  false,
				Columns: []*schema.Column{DependenciesColumns[4]},
			},
			{
				Name:    "dependency_dependency_target",
				Unique:  false,
				Columns: []*schema.Column{DependenciesColumns[5]},
			},
		},
	}
	// FeaturesColumns holds the columns for the "features" table.
	FeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 120},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 8000},
		{Name: "pos_x", Type: field.TypeFloat64, Nullable: true},
		{Name: "pos_y", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "feature_project", Type: field.TypeUUID},
	}
	// FeaturesTable holds the schema information for the "features" table.
	FeaturesTable = &schema.Table{
		Name:       "features",
		Columns:    FeaturesColumns,
		PrimaryKey: []*schema.Column{FeaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "features_projects_project",
				Columns:    []*schema.Column{FeaturesColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feature_feature_project",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[7]},
			},
			{
				Name:    "feature_updated_at_feature_project",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[6], FeaturesColumns[7]},
			},
		},
	}
	// GraphRunsColumns holds the columns for the "graph_runs" table.
	GraphRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "model", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "used_fallback", Type: field.TypeBool, Default: false},
		{Name: "dropped_edges", Type: field.TypeInt, Default: 0},
		{Name: "feature_count", Type: field.TypeInt, Default: 0},
		{Name: "edge_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "graph_run_project", Type: field.TypeUUID},
	}
	// GraphRunsTable holds the schema information for the "graph_runs" table.
	GraphRunsTable = &schema.Table{
		Name:       "graph_runs",
		Columns:    GraphRunsColumns,
		PrimaryKey: []*schema.Column{GraphRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "graph_runs_projects_project",
				Columns:    []*schema.Column{GraphRunsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "graphrun_created_at_graph_run_project",
				Unique:  false,
				Columns: []*schema.Column{GraphRunsColumns[6], GraphRunsColumns[7]},
			},
		},
	}
	// PrDsColumns holds the columns for the "pr_ds" table.
	PrDsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "generating", "ready", "error"}, Default: "idle"},
		{Name: "content_md", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "model", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prd_feature", Type: field.TypeUUID},
	}
	// PrDsTable holds the schema information for the "pr_ds" table.
	PrDsTable = &schema.Table{
		Name:       "pr_ds",
		Columns:    PrDsColumns,
		PrimaryKey: []*schema.Column{PrDsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pr_ds_features_feature",
				Columns:    []*schema.Column{PrDsColumns[8]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prd_prd_feature",
				Unique:  true,
				Columns: []*schema.Column{PrDsColumns[8]},
			},
			{
				Name:    "prd_status",
				Unique:  false,
				Columns: []*schema.Column{PrDsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 4000},
		{Name: "graph", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_owner", Type: field.TypeUUID},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_owner",
				Columns:    []*schema.Column{ProjectsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_project_owner",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "display_name", Type: field.TypeString, Size: 120},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APICredentialsTable,
		DependenciesTable,
		FeaturesTable,
		GraphRunsTable,
		PrDsTable,
		ProjectsTable,
		UsersTable,
	}
)

func init() {
	APICredentialsTable.ForeignKeys[0].RefTable = UsersTable
	DependenciesTable.ForeignKeys[0].RefTable = ProjectsTable
	DependenciesTable.ForeignKeys[1].RefTable = FeaturesTable
	DependenciesTable.ForeignKeys[2].RefTable = FeaturesTable
	FeaturesTable.ForeignKeys[0].RefTable = ProjectsTable
	GraphRunsTable.ForeignKeys[0].RefTable = ProjectsTable
	PrDsTable.ForeignKeys[0].RefTable = FeaturesTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
}
