package notify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type fakeTemplateStore struct {
	templates map[string]*dbmodels.MessageTemplate
	updated   map[string]map[string]interface{}
}

func (f *fakeTemplateStore) Create(rec dbmodels.MessageTemplate) error {
	f.templates[rec.Key] = &rec
	return nil
}

func (f *fakeTemplateStore) Update(id string, updMap map[string]interface{}) error {
	if f.updated == nil {
		f.updated = map[string]map[string]interface{}{}
	}
	f.updated[id] = updMap
	return nil
}

func (f *fakeTemplateStore) GetByKey(key string) (*dbmodels.MessageTemplate, error) {
	rec, ok := f.templates[key]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeTemplateStore) List() ([]dbmodels.MessageTemplate, error) {
	list := []dbmodels.MessageTemplate{}
	for _, rec := range f.templates {
		list = append(list, *rec)
	}
	return list, nil
}

type fakeOutboxStore struct {
	rows []dbmodels.Notification
}

func (f *fakeOutboxStore) Create(rec dbmodels.Notification) (string, error) {
	f.rows = append(f.rows, rec)
	return "n-1", nil
}

func (f *fakeOutboxStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeOutboxStore) ListPending(limit int) ([]dbmodels.Notification, error) {
	return f.rows, nil
}

func newFixture() (impl, *fakeTemplateStore, *fakeOutboxStore) {
	templates := &fakeTemplateStore{templates: map[string]*dbmodels.MessageTemplate{}}
	outbox := &fakeOutboxStore{}
	h := impl{
		templateStore: templates,
		outboxStore:   outbox,
	}
	return h, templates, outbox
}

func TestEnqueue(t *testing.T) {
	t.Run(`binds placeholders into subject and body`, func(t *testing.T) {
		h, templates, outbox := newFixture()
		templates.templates["greeting"] = &dbmodels.MessageTemplate{
			Key:      "greeting",
			Subject:  "Interview for {{.JobTitle}}",
			Body:     "Dear {{.CandidateName}}, see you at {{.InterviewDate}}.",
			IsActive: true,
		}

		err := h.Enqueue("greeting", "ada@example.com", models.TemplateData{
			CandidateName: "Ada Lovelace",
			JobTitle:      "Backend Engineer",
			InterviewDate: "01 Sep 2026 10:00",
		})
		require.NoError(t, err)
		require.Len(t, outbox.rows, 1)
		row := outbox.rows[0]
		require.Equal(t, "Interview for Backend Engineer", row.Subject)
		require.Equal(t, "Dear Ada Lovelace, see you at 01 Sep 2026 10:00.", row.Body)
		require.Equal(t, "ada@example.com", row.Recipient)
		require.Equal(t, dbmodels.NotificationStatusPending, row.Status)
		require.Empty(t, row.AttachmentKey)
	})

	t.Run(`unknown template is a non-throwing failure`, func(t *testing.T) {
		h, _, outbox := newFixture()
		err := h.Enqueue("missing", "ada@example.com", models.TemplateData{})
		require.Error(t, err)
		require.Empty(t, outbox.rows)
	})

	t.Run(`inactive template is not sent`, func(t *testing.T) {
		h, templates, outbox := newFixture()
		templates.templates["greeting"] = &dbmodels.MessageTemplate{
			Key:      "greeting",
			Subject:  "s",
			Body:     "b",
			IsActive: false,
		}
		err := h.Enqueue("greeting", "ada@example.com", models.TemplateData{})
		require.Error(t, err)
		require.Empty(t, outbox.rows)
	})

	t.Run(`missing recipient is rejected`, func(t *testing.T) {
		h, templates, outbox := newFixture()
		templates.templates["greeting"] = &dbmodels.MessageTemplate{Key: "greeting", Subject: "s", Body: "b", IsActive: true}
		err := h.Enqueue("greeting", "", models.TemplateData{})
		require.Error(t, err)
		require.Empty(t, outbox.rows)
	})

	t.Run(`attachment key travels with the row`, func(t *testing.T) {
		h, templates, outbox := newFixture()
		templates.templates["offer"] = &dbmodels.MessageTemplate{Key: "offer", Subject: "Offer", Body: "b", IsActive: true}
		err := h.EnqueueWithAttachment("offer", "ada@example.com", models.TemplateData{}, "offers/app-1.pdf")
		require.NoError(t, err)
		require.Equal(t, "offers/app-1.pdf", outbox.rows[0].AttachmentKey)
	})
}

func TestSeedDefaults(t *testing.T) {
	t.Run(`seeding creates every known key once`, func(t *testing.T) {
		h, templates, _ := newFixture()
		require.NoError(t, h.seedDefaults())
		for _, tpl := range defaultTemplates {
			require.Contains(t, templates.templates, tpl.Key)
		}
	})

	t.Run(`existing templates are preserved`, func(t *testing.T) {
		h, templates, _ := newFixture()
		templates.templates[models.TplRejection] = &dbmodels.MessageTemplate{
			Key:     models.TplRejection,
			Subject: "customized",
			Body:    "customized",
		}
		require.NoError(t, h.seedDefaults())
		require.Equal(t, "customized", templates.templates[models.TplRejection].Subject)
	})
}

func TestTemplateUpdateValidate(t *testing.T) {
	t.Run(`well-formed template passes`, func(t *testing.T) {
		upd := TemplateUpdate{Subject: "Hi {{.CandidateName}}", Body: "b", IsActive: true}
		require.NoError(t, upd.Validate())
	})

	t.Run(`malformed placeholder is rejected`, func(t *testing.T) {
		upd := TemplateUpdate{Subject: "Hi {{.CandidateName", Body: "b"}
		require.Error(t, upd.Validate())
	})

	t.Run(`empty body is rejected`, func(t *testing.T) {
		upd := TemplateUpdate{Subject: "s"}
		require.Error(t, upd.Validate())
	})
}
