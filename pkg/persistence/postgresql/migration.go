package postgresql

func migrations() map[int]string {
	return map[int]string{
		1: `
			-- Workflow definition master table
			CREATE TABLE wfd_workflow_master (
				workflow_master_id SERIAL PRIMARY KEY,
				wfd_name VARCHAR(255) NOT NULL,
				wfd_desc TEXT NOT NULL,
				wfd_status VARCHAR(20) NOT NULL CHECK (wfd_status IN ('active', 'inactive'))
			);

			-- Stages of a workflow. seq_no is deliberately not unique per
			-- workflow; reads tie-break by idwfd_stages.
			CREATE TABLE wfd_stages (
				idwfd_stages SERIAL PRIMARY KEY,
				wf_id INTEGER NOT NULL,
				seq_no INTEGER NOT NULL CHECK (seq_no >= 1),
				stage_name VARCHAR(255) NOT NULL,
				stage_desc TEXT NOT NULL,
				no_of_uploads INTEGER NOT NULL DEFAULT 0 CHECK (no_of_uploads >= 0),
				actor_type VARCHAR(10) NOT NULL CHECK (actor_type IN ('role', 'user')),
				actor_count INTEGER NOT NULL CHECK (actor_count >= 1),
				any_all_flag VARCHAR(5) NOT NULL CHECK (any_all_flag IN ('any', 'all')),
				conflict_check SMALLINT NOT NULL DEFAULT 0 CHECK (conflict_check IN (0, 1)),
				document_required SMALLINT NOT NULL DEFAULT 0 CHECK (document_required IN (0, 1)),
				role_id INTEGER,
				user_id INTEGER
			);

			CREATE INDEX idx_wfd_stages_wf_id ON wfd_stages(wf_id);
			CREATE INDEX idx_wfd_stages_seq ON wfd_stages(wf_id, seq_no, idwfd_stages);

			-- Actions attached to a stage. next_stage_id is populated only
			-- for 'specific' transitions; role_id/user_id are actor override
			-- slots never written by the validated paths.
			CREATE TABLE wfd_stages_actions (
				idwfd_stages_actions SERIAL PRIMARY KEY,
				stage_id INTEGER NOT NULL,
				action_name VARCHAR(255) NOT NULL,
				action_desc TEXT,
				next_stage_type VARCHAR(10) NOT NULL CHECK (next_stage_type IN ('next', 'prev', 'complete', 'specific')),
				next_stage_id INTEGER,
				required_count INTEGER NOT NULL DEFAULT 1 CHECK (required_count >= 1),
				role_id INTEGER,
				user_id INTEGER
			);

			CREATE INDEX idx_wfd_stages_actions_stage_id ON wfd_stages_actions(stage_id);
		`,
	}
}
