package export

// Schema is the reference PostgreSQL schema shown on the export screen.
// It is maintained by hand alongside the gorm models and is not used to
// migrate anything.
const Schema = `-- Cell Growth Hub schema (PostgreSQL)

CREATE TABLE churches (
  id           BIGSERIAL PRIMARY KEY,
  name         VARCHAR(255) NOT NULL,
  slug         VARCHAR(120) NOT NULL UNIQUE,
  plan         VARCHAR(20)  NOT NULL DEFAULT 'free',
  member_limit INTEGER      NOT NULL DEFAULT 0,
  email        VARCHAR(255),
  phone        VARCHAR(40),
  address      TEXT,
  is_active    BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ,
  updated_at   TIMESTAMPTZ,
  deleted_at   TIMESTAMPTZ
);

CREATE TABLE profiles (
  id            BIGSERIAL PRIMARY KEY,
  church_id     BIGINT       NOT NULL REFERENCES churches(id),
  email         VARCHAR(255) NOT NULL UNIQUE,
  full_name     VARCHAR(255) NOT NULL,
  password_hash VARCHAR(255) NOT NULL,
  member_id     BIGINT,
  created_at    TIMESTAMPTZ,
  updated_at    TIMESTAMPTZ,
  deleted_at    TIMESTAMPTZ
);

CREATE TABLE user_roles (
  id         BIGSERIAL PRIMARY KEY,
  profile_id BIGINT      NOT NULL REFERENCES profiles(id),
  church_id  BIGINT      NOT NULL REFERENCES churches(id),
  role       VARCHAR(20) NOT NULL,
  created_at TIMESTAMPTZ,
  UNIQUE (profile_id, church_id)
);

CREATE TABLE invitations (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT       NOT NULL REFERENCES churches(id),
  email      VARCHAR(255) NOT NULL,
  role       VARCHAR(20)  NOT NULL,
  token      VARCHAR(64)  NOT NULL UNIQUE,
  expires_at TIMESTAMPTZ  NOT NULL,
  used_at    TIMESTAMPTZ,
  created_by BIGINT       NOT NULL,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE congregations (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT       NOT NULL REFERENCES churches(id),
  name       VARCHAR(255) NOT NULL,
  address    TEXT,
  pastor_id  BIGINT,
  is_active  BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE members (
  id               BIGSERIAL PRIMARY KEY,
  church_id        BIGINT       NOT NULL REFERENCES churches(id),
  full_name        VARCHAR(255) NOT NULL,
  email            VARCHAR(255),
  phone            VARCHAR(40),
  birth_date       DATE,
  gender           VARCHAR(20),
  marital_status   VARCHAR(20),
  address          TEXT,
  spiritual_status VARCHAR(30)  NOT NULL DEFAULT 'visitante',
  conversion_date  DATE,
  baptism_date     DATE,
  congregation_id  BIGINT REFERENCES congregations(id),
  notes            TEXT,
  is_active        BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at       TIMESTAMPTZ,
  updated_at       TIMESTAMPTZ
);

CREATE TABLE cells (
  id              BIGSERIAL PRIMARY KEY,
  church_id       BIGINT       NOT NULL REFERENCES churches(id),
  name            VARCHAR(255) NOT NULL,
  description     TEXT,
  leader_id       BIGINT REFERENCES members(id),
  supervisor_id   BIGINT REFERENCES members(id),
  congregation_id BIGINT REFERENCES congregations(id),
  host            VARCHAR(255),
  address         TEXT,
  meeting_day     VARCHAR(20),
  meeting_time    VARCHAR(10),
  is_active       BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at      TIMESTAMPTZ,
  updated_at      TIMESTAMPTZ
);

CREATE TABLE cell_members (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT NOT NULL REFERENCES churches(id),
  cell_id    BIGINT NOT NULL REFERENCES cells(id),
  member_id  BIGINT NOT NULL REFERENCES members(id),
  joined_at  TIMESTAMPTZ,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ,
  UNIQUE (cell_id, member_id)
);

CREATE TABLE cell_reports (
  id              BIGSERIAL PRIMARY KEY,
  church_id       BIGINT  NOT NULL REFERENCES churches(id),
  cell_id         BIGINT  NOT NULL REFERENCES cells(id),
  report_date     DATE    NOT NULL,
  attendance      INTEGER NOT NULL DEFAULT 0,
  members_present INTEGER NOT NULL DEFAULT 0,
  visitors        INTEGER NOT NULL DEFAULT 0,
  conversions     INTEGER NOT NULL DEFAULT 0,
  offering        BIGINT  NOT NULL DEFAULT 0,
  notes           TEXT,
  submitted_by    BIGINT REFERENCES profiles(id),
  created_at      TIMESTAMPTZ,
  updated_at      TIMESTAMPTZ
);

CREATE TABLE cell_report_attendances (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT  NOT NULL REFERENCES churches(id),
  report_id  BIGINT  NOT NULL REFERENCES cell_reports(id),
  member_id  BIGINT  NOT NULL REFERENCES members(id),
  present    BOOLEAN NOT NULL,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE cell_visitors (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT       NOT NULL REFERENCES churches(id),
  cell_id    BIGINT       NOT NULL REFERENCES cells(id),
  name       VARCHAR(255) NOT NULL,
  phone      VARCHAR(40),
  visit_date DATE         NOT NULL,
  invited_by BIGINT REFERENCES members(id),
  converted  BOOLEAN      NOT NULL DEFAULT FALSE,
  notes      TEXT,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE cell_prayer_requests (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT      NOT NULL REFERENCES churches(id),
  cell_id    BIGINT      NOT NULL REFERENCES cells(id),
  member_id  BIGINT REFERENCES members(id),
  request    TEXT        NOT NULL,
  status     VARCHAR(20) NOT NULL DEFAULT 'open',
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE cell_pastoral_care (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT NOT NULL REFERENCES churches(id),
  cell_id    BIGINT NOT NULL REFERENCES cells(id),
  member_id  BIGINT NOT NULL REFERENCES members(id),
  care_date  DATE   NOT NULL,
  care_type  VARCHAR(40),
  notes      TEXT,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE cell_leadership_development (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT      NOT NULL REFERENCES churches(id),
  cell_id    BIGINT      NOT NULL REFERENCES cells(id),
  member_id  BIGINT      NOT NULL REFERENCES members(id),
  stage      VARCHAR(40) NOT NULL,
  start_date DATE,
  notes      TEXT,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE ministries (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT       NOT NULL REFERENCES churches(id),
  name        VARCHAR(255) NOT NULL,
  description TEXT,
  leader_id   BIGINT REFERENCES members(id),
  is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE ministry_volunteers (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT NOT NULL REFERENCES churches(id),
  ministry_id BIGINT NOT NULL REFERENCES ministries(id),
  member_id   BIGINT NOT NULL REFERENCES members(id),
  role        VARCHAR(60),
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE ministry_schedules (
  id             BIGSERIAL PRIMARY KEY,
  church_id      BIGINT       NOT NULL REFERENCES churches(id),
  ministry_id    BIGINT       NOT NULL REFERENCES ministries(id),
  title          VARCHAR(255) NOT NULL,
  scheduled_date DATE         NOT NULL,
  start_time     VARCHAR(10),
  notes          TEXT,
  created_at     TIMESTAMPTZ,
  updated_at     TIMESTAMPTZ
);

CREATE TABLE schedule_volunteers (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT  NOT NULL REFERENCES churches(id),
  schedule_id BIGINT  NOT NULL REFERENCES ministry_schedules(id),
  member_id   BIGINT  NOT NULL REFERENCES members(id),
  role        VARCHAR(60),
  confirmed   BOOLEAN NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE financial_categories (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT       NOT NULL REFERENCES churches(id),
  name       VARCHAR(255) NOT NULL,
  type       VARCHAR(20)  NOT NULL,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE financial_accounts (
  id              BIGSERIAL PRIMARY KEY,
  church_id       BIGINT       NOT NULL REFERENCES churches(id),
  name            VARCHAR(255) NOT NULL,
  account_type    VARCHAR(40),
  initial_balance BIGINT       NOT NULL DEFAULT 0,
  current_balance BIGINT       NOT NULL DEFAULT 0,
  is_active       BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at      TIMESTAMPTZ,
  updated_at      TIMESTAMPTZ
);

CREATE TABLE financial_campaigns (
  id             BIGSERIAL PRIMARY KEY,
  church_id      BIGINT       NOT NULL REFERENCES churches(id),
  name           VARCHAR(255) NOT NULL,
  description    TEXT,
  goal_amount    BIGINT       NOT NULL DEFAULT 0,
  current_amount BIGINT       NOT NULL DEFAULT 0,
  start_date     DATE,
  end_date       DATE,
  is_active      BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at     TIMESTAMPTZ,
  updated_at     TIMESTAMPTZ
);

CREATE TABLE financial_transactions (
  id               BIGSERIAL PRIMARY KEY,
  church_id        BIGINT      NOT NULL REFERENCES churches(id),
  type             VARCHAR(20) NOT NULL,
  amount           BIGINT      NOT NULL,
  category_id      BIGINT REFERENCES financial_categories(id),
  account_id       BIGINT REFERENCES financial_accounts(id),
  campaign_id      BIGINT REFERENCES financial_campaigns(id),
  member_id        BIGINT REFERENCES members(id),
  transaction_date DATE        NOT NULL,
  description      TEXT,
  payment_method   VARCHAR(40),
  created_at       TIMESTAMPTZ,
  updated_at       TIMESTAMPTZ
);

CREATE TABLE events (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT       NOT NULL REFERENCES churches(id),
  title       VARCHAR(255) NOT NULL,
  description TEXT,
  event_date  TIMESTAMPTZ  NOT NULL,
  end_date    TIMESTAMPTZ,
  location    VARCHAR(255),
  capacity    INTEGER,
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE event_registrations (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT      NOT NULL REFERENCES churches(id),
  event_id    BIGINT      NOT NULL REFERENCES events(id),
  member_id   BIGINT REFERENCES members(id),
  guest_name  VARCHAR(255),
  guest_email VARCHAR(255),
  status      VARCHAR(20) NOT NULL DEFAULT 'confirmed',
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE courses (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT       NOT NULL REFERENCES churches(id),
  name        VARCHAR(255) NOT NULL,
  description TEXT,
  teacher_id  BIGINT REFERENCES members(id),
  start_date  DATE,
  end_date    DATE,
  is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE course_students (
  id           BIGSERIAL PRIMARY KEY,
  church_id    BIGINT      NOT NULL REFERENCES churches(id),
  course_id    BIGINT      NOT NULL REFERENCES courses(id),
  member_id    BIGINT      NOT NULL REFERENCES members(id),
  status       VARCHAR(20) NOT NULL DEFAULT 'enrolled',
  enrolled_at  TIMESTAMPTZ,
  completed_at TIMESTAMPTZ,
  created_at   TIMESTAMPTZ,
  updated_at   TIMESTAMPTZ,
  UNIQUE (course_id, member_id)
);

CREATE TABLE consolidation_records (
  id              BIGSERIAL PRIMARY KEY,
  church_id       BIGINT      NOT NULL REFERENCES churches(id),
  member_id       BIGINT      NOT NULL REFERENCES members(id),
  consolidator_id BIGINT REFERENCES members(id),
  status          VARCHAR(20) NOT NULL DEFAULT 'pending',
  contact_date    DATE,
  notes           TEXT,
  created_at      TIMESTAMPTZ,
  updated_at      TIMESTAMPTZ
);

CREATE TABLE discipleships (
  id           BIGSERIAL PRIMARY KEY,
  church_id    BIGINT      NOT NULL REFERENCES churches(id),
  discipler_id BIGINT      NOT NULL REFERENCES members(id),
  disciple_id  BIGINT      NOT NULL REFERENCES members(id),
  status       VARCHAR(20) NOT NULL DEFAULT 'active',
  start_date   DATE,
  notes        TEXT,
  created_at   TIMESTAMPTZ,
  updated_at   TIMESTAMPTZ
);

CREATE TABLE pastoral_visits (
  id         BIGSERIAL PRIMARY KEY,
  church_id  BIGINT NOT NULL REFERENCES churches(id),
  member_id  BIGINT REFERENCES members(id),
  pastor_id  BIGINT REFERENCES members(id),
  visit_date DATE   NOT NULL,
  reason     VARCHAR(255),
  notes      TEXT,
  created_at TIMESTAMPTZ,
  updated_at TIMESTAMPTZ
);

CREATE TABLE pastoral_counseling (
  id              BIGSERIAL PRIMARY KEY,
  church_id       BIGINT  NOT NULL REFERENCES churches(id),
  member_id       BIGINT  NOT NULL REFERENCES members(id),
  counselor_id    BIGINT REFERENCES members(id),
  session_date    DATE    NOT NULL,
  topic           VARCHAR(255),
  notes           TEXT,
  is_confidential BOOLEAN NOT NULL DEFAULT TRUE,
  created_at      TIMESTAMPTZ,
  updated_at      TIMESTAMPTZ
);

CREATE TABLE reminders (
  id          BIGSERIAL PRIMARY KEY,
  church_id   BIGINT       NOT NULL REFERENCES churches(id),
  profile_id  BIGINT REFERENCES profiles(id),
  title       VARCHAR(255) NOT NULL,
  description TEXT,
  due_date    TIMESTAMPTZ  NOT NULL,
  is_done     BOOLEAN      NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ,
  updated_at  TIMESTAMPTZ
);

CREATE TABLE announcements (
  id           BIGSERIAL PRIMARY KEY,
  church_id    BIGINT       NOT NULL REFERENCES churches(id),
  title        VARCHAR(255) NOT NULL,
  content      TEXT         NOT NULL,
  published_at TIMESTAMPTZ,
  expires_at   TIMESTAMPTZ,
  created_by   BIGINT REFERENCES profiles(id),
  created_at   TIMESTAMPTZ,
  updated_at   TIMESTAMPTZ
);

CREATE TABLE prayer_requests (
  id             BIGSERIAL PRIMARY KEY,
  church_id      BIGINT      NOT NULL REFERENCES churches(id),
  member_id      BIGINT REFERENCES members(id),
  requester_name VARCHAR(255),
  request        TEXT        NOT NULL,
  is_private     BOOLEAN     NOT NULL DEFAULT FALSE,
  status         VARCHAR(20) NOT NULL DEFAULT 'open',
  created_at     TIMESTAMPTZ,
  updated_at     TIMESTAMPTZ
);
`
