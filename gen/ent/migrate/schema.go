// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DosDetailsColumns holds the columns for the "dos_details" table.
	DosDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "study_name", Type: field.TypeString, Nullable: true},
		{Name: "date_calibration", Type: field.TypeString, Nullable: true},
		{Name: "time_calibration", Type: field.TypeString, Nullable: true},
		{Name: "rac", Type: field.TypeString, Nullable: true},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true},
		{Name: "rx_batch", Type: field.TypeInt},
		{Name: "lot_batch", Type: field.TypeString, Nullable: true},
		{Name: "volume", Type: field.TypeString, Nullable: true},
		{Name: "dos", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "vial_id", Type: field.TypeUUID},
	}
	// DosDetailsTable holds the schema information for the "dos_details" table.
	DosDetailsTable = &schema.Table{
		Name:       "dos_details",
		Columns:    DosDetailsColumns,
		PrimaryKey: []*schema.Column{DosDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dos_details_vial_dose_details",
				Columns:    []*schema.Column{DosDetailsColumns[11]},
				RefColumns: []*schema.Column{VialColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ScanJobsColumns holds the columns for the "scan_jobs" table.
	ScanJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "scan_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "line_count", Type: field.TypeInt, Default: 0},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeBytes, Nullable: true},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString},
	}
	// ScanJobsTable holds the schema information for the "scan_jobs" table.
	ScanJobsTable = &schema.Table{
		Name:       "scan_jobs",
		Columns:    ScanJobsColumns,
		PrimaryKey: []*schema.Column{ScanJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_session_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[1], ScanJobsColumns[4]},
			},
		},
	}
	// VialColumns holds the columns for the "vial" table.
	VialColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "radiopharmaceutical", Type: field.TypeString},
		{Name: "rx_number", Type: field.TypeInt},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "actual_amount", Type: field.TypeString, Nullable: true},
		{Name: "calibration_date", Type: field.TypeString, Nullable: true},
		{Name: "lot_number", Type: field.TypeString, Nullable: true},
		{Name: "entered_by", Type: field.TypeString},
		{Name: "entered_date_time", Type: field.TypeTime},
		{Name: "ordered_amount", Type: field.TypeString, Nullable: true},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true},
		{Name: "volume", Type: field.TypeString, Nullable: true},
		{Name: "radioactivity_concentration", Type: field.TypeString, Nullable: true},
		{Name: "label_image_url", Type: field.TypeString, Nullable: true},
		{Name: "coa_image_url", Type: field.TypeString, Nullable: true},
		{Name: "vial_image_url", Type: field.TypeString, Nullable: true},
		{Name: "new_label_image_url", Type: field.TypeString, Nullable: true},
		{Name: "new_vial_image_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VialTable holds the schema information for the "vial" table.
	VialTable = &schema.Table{
		Name:       "vial",
		Columns:    VialColumns,
		PrimaryKey: []*schema.Column{VialColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vial_rx_number",
				Unique:  false,
				Columns: []*schema.Column{VialColumns[2]},
			},
			{
				Name:    "vial_entered_date_time",
				Unique:  false,
				Columns: []*schema.Column{VialColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DosDetailsTable,
		ScanJobsTable,
		VialTable,
	}
)

func init() {
	DosDetailsTable.ForeignKeys[0].RefTable = VialTable
	DosDetailsTable.Annotation = &entsql.Annotation{
		Table: "dos_details",
	}
	ScanJobsTable.Annotation = &entsql.Annotation{
		Table: "scan_jobs",
	}
	VialTable.Annotation = &entsql.Annotation{
		Table: "vial",
	}
}
