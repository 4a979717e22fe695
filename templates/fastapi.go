/*
Copyright © 2025 Flow CLI Authors

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

package templates

import (
	"fmt"
	"strings"
)

// generateFastAPI writes an async FastAPI service with a layered src/
// layout. Alembic support is only emitted when SQLAlchemy is also selected;
// migrations without an ORM layer have nothing to migrate.
func generateFastAPI(tree *Tree, req Request) error {
	sqla := req.Features.Has("sqlalchemy")
	alembic := req.Features.Has("alembic") && sqla
	jwt := req.Features.Has("jwt")
	docker := req.Features.Has(FeatureDocker)
	prometheus := req.Features.Has("prometheus")
	apiDocs := req.Features.Has("api-docs")

	for _, pkg := range []string{"api", "core", "db", "models", "schemas", "services"} {
		if err := tree.File("", "src", pkg, "__init__.py"); err != nil {
			return err
		}
	}
	if err := tree.File("", "src", "__init__.py"); err != nil {
		return err
	}
	if err := tree.File("", "tests", "__init__.py"); err != nil {
		return err
	}

	if err := tree.File(fastapiMain(req, sqla, prometheus, apiDocs), "src", "main.py"); err != nil {
		return err
	}
	if err := tree.File(fastapiSettings(req), "src", "core", "config.py"); err != nil {
		return err
	}
	if err := tree.File(fastapiHealthRouter, "src", "api", "health.py"); err != nil {
		return err
	}
	if err := tree.File(fastapiRequirements(req, alembic), "requirements.txt"); err != nil {
		return err
	}
	if err := tree.File(fastapiDevRequirements, "requirements-dev.txt"); err != nil {
		return err
	}
	if err := tree.File(gitignorePython, ".gitignore"); err != nil {
		return err
	}
	if err := tree.File(fastapiEnvExample(req, sqla, jwt), ".env.example"); err != nil {
		return err
	}
	if err := tree.File(fastapiReadme(req), "README.md"); err != nil {
		return err
	}
	if err := tree.File(fastapiHealthTest, "tests", "test_health.py"); err != nil {
		return err
	}

	if sqla {
		if err := tree.File(fastapiDatabase, "src", "db", "database.py"); err != nil {
			return err
		}
		if err := tree.File(fastapiUserModel, "src", "models", "user.py"); err != nil {
			return err
		}
		if err := tree.File(fastapiUserSchema, "src", "schemas", "user.py"); err != nil {
			return err
		}
	}
	if alembic {
		if err := tree.File(fastapiAlembicINI, "alembic.ini"); err != nil {
			return err
		}
		if err := tree.File(fastapiAlembicEnv, "alembic", "env.py"); err != nil {
			return err
		}
		if err := tree.File(fastapiAlembicTemplate, "alembic", "script.py.mako"); err != nil {
			return err
		}
		if err := tree.Dir("alembic", "versions"); err != nil {
			return err
		}
	}
	if jwt {
		if err := tree.File(fastapiAuth, "src", "core", "auth.py"); err != nil {
			return err
		}
	}
	if prometheus {
		if err := tree.File(fastapiMetrics, "src", "core", "metrics.py"); err != nil {
			return err
		}
	}
	if apiDocs {
		if err := tree.File(fastapiDocs(req), "src", "core", "docs.py"); err != nil {
			return err
		}
	}
	if docker {
		if err := tree.File(fastapiDockerfile, "Dockerfile"); err != nil {
			return err
		}
		if err := tree.File(fastapiCompose(req, sqla), "docker-compose.yml"); err != nil {
			return err
		}
		if err := tree.File(dockerignorePython, ".dockerignore"); err != nil {
			return err
		}
	}

	return nil
}

func fastapiMain(req Request, sqla, prometheus, apiDocs bool) string {
	var b strings.Builder
	b.WriteString("from fastapi import FastAPI\n\nfrom src.api.health import router as health_router\nfrom src.core.config import settings\n")
	if prometheus {
		b.WriteString("from src.core.metrics import setup_metrics\n")
	}
	if apiDocs {
		b.WriteString("from src.core.docs import custom_openapi\n")
	}
	b.WriteString("\napp = FastAPI(title=settings.app_name, version=settings.version)\n")
	b.WriteString("app.include_router(health_router)\n")
	if prometheus {
		b.WriteString("setup_metrics(app)\n")
	}
	if apiDocs {
		b.WriteString("app.openapi = lambda: custom_openapi(app)\n")
	}
	return b.String()
}

func fastapiSettings(req Request) string {
	return fmt.Sprintf(`from pydantic_settings import BaseSettings


class Settings(BaseSettings):
    app_name: str = "%s"
    version: str = "%s"
    database_url: str = "sqlite+aiosqlite:///./app.db"
    secret_key: str = "change-me"

    class Config:
        env_file = ".env"


settings = Settings()
`, req.Name, req.Version)
}

const fastapiHealthRouter = `from fastapi import APIRouter

router = APIRouter()


@router.get("/health")
async def health() -> dict[str, str]:
    return {"status": "ok"}
`

func fastapiRequirements(req Request, alembic bool) string {
	lines := []string{
		"fastapi>=0.110.0",
		"uvicorn[standard]>=0.27.1",
		"pydantic>=2.6.1",
		"pydantic-settings>=2.2.1",
	}
	if req.Features.Has("sqlalchemy") {
		lines = append(lines, "sqlalchemy[asyncio]>=2.0.27", "aiosqlite>=0.19.0")
	}
	if alembic {
		lines = append(lines, "alembic>=1.13.1")
	}
	if req.Features.Has("jwt") {
		lines = append(lines, "python-jose[cryptography]>=3.3.0", "passlib[bcrypt]>=1.7.4")
	}
	if req.Features.Has("prometheus") {
		lines = append(lines, "prometheus-client>=0.20.0")
	}
	return strings.Join(lines, "\n") + "\n"
}

const fastapiDevRequirements = `pytest>=8.0.1
pytest-asyncio>=0.23.5
httpx>=0.27.0
`

func fastapiEnvExample(req Request, sqla, jwt bool) string {
	out := ""
	if sqla {
		out += "DATABASE_URL=sqlite+aiosqlite:///./app.db\n"
	}
	if jwt {
		out += "SECRET_KEY=change-me\n"
	}
	if out == "" {
		out = "# Application environment overrides\n"
	}
	return out
}

const fastapiDatabase = `from collections.abc import AsyncGenerator

from sqlalchemy.ext.asyncio import AsyncSession, async_sessionmaker, create_async_engine
from sqlalchemy.orm import DeclarativeBase

from src.core.config import settings

engine = create_async_engine(settings.database_url)
async_session = async_sessionmaker(engine, expire_on_commit=False)


class Base(DeclarativeBase):
    pass


async def get_session() -> AsyncGenerator[AsyncSession, None]:
    async with async_session() as session:
        yield session
`

const fastapiUserModel = `from sqlalchemy import String
from sqlalchemy.orm import Mapped, mapped_column

from src.db.database import Base


class User(Base):
    __tablename__ = "users"

    id: Mapped[int] = mapped_column(primary_key=True)
    email: Mapped[str] = mapped_column(String(255), unique=True, index=True)
    hashed_password: Mapped[str] = mapped_column(String(255))
    is_active: Mapped[bool] = mapped_column(default=True)
`

const fastapiUserSchema = `from pydantic import BaseModel, EmailStr


class UserBase(BaseModel):
    email: EmailStr


class UserCreate(UserBase):
    password: str


class UserRead(UserBase):
    id: int
    is_active: bool

    class Config:
        from_attributes = True
`

const fastapiAlembicINI = `[alembic]
script_location = alembic
prepend_sys_path = .

[loggers]
keys = root,sqlalchemy,alembic

[handlers]
keys = console

[formatters]
keys = generic

[logger_root]
level = WARN
handlers = console

[logger_sqlalchemy]
level = WARN
handlers =
qualname = sqlalchemy.engine

[logger_alembic]
level = INFO
handlers =
qualname = alembic

[handler_console]
class = StreamHandler
args = (sys.stderr,)
level = NOTSET
formatter = generic

[formatter_generic]
format = %(levelname)-5.5s [%(name)s] %(message)s
`

const fastapiAlembicEnv = `import asyncio
from logging.config import fileConfig

from alembic import context
from sqlalchemy.ext.asyncio import create_async_engine

from src.core.config import settings
from src.db.database import Base
from src.models.user import User  # noqa: F401

config = context.config

if config.config_file_name is not None:
    fileConfig(config.config_file_name)

target_metadata = Base.metadata


def run_migrations_offline() -> None:
    context.configure(
        url=settings.database_url,
        target_metadata=target_metadata,
        literal_binds=True,
    )
    with context.begin_transaction():
        context.run_migrations()


def do_run_migrations(connection) -> None:
    context.configure(connection=connection, target_metadata=target_metadata)
    with context.begin_transaction():
        context.run_migrations()


async def run_migrations_online() -> None:
    engine = create_async_engine(settings.database_url)
    async with engine.connect() as connection:
        await connection.run_sync(do_run_migrations)
    await engine.dispose()


if context.is_offline_mode():
    run_migrations_offline()
else:
    asyncio.run(run_migrations_online())
`

const fastapiAlembicTemplate = `"""${message}

Revision ID: ${up_revision}
Revises: ${down_revision | comma,n}
Create Date: ${create_date}

"""
from alembic import op
import sqlalchemy as sa
${imports if imports else ""}

revision = ${repr(up_revision)}
down_revision = ${repr(down_revision)}
branch_labels = ${repr(branch_labels)}
depends_on = ${repr(depends_on)}


def upgrade() -> None:
    ${upgrades if upgrades else "pass"}


def downgrade() -> None:
    ${downgrades if downgrades else "pass"}
`

const fastapiAuth = `from datetime import datetime, timedelta, timezone

from jose import JWTError, jwt
from passlib.context import CryptContext

from src.core.config import settings

ALGORITHM = "HS256"
ACCESS_TOKEN_EXPIRE_MINUTES = 30

pwd_context = CryptContext(schemes=["bcrypt"], deprecated="auto")


def verify_password(plain: str, hashed: str) -> bool:
    return pwd_context.verify(plain, hashed)


def hash_password(password: str) -> str:
    return pwd_context.hash(password)


def create_access_token(subject: str) -> str:
    expire = datetime.now(timezone.utc) + timedelta(minutes=ACCESS_TOKEN_EXPIRE_MINUTES)
    payload = {"sub": subject, "exp": expire}
    return jwt.encode(payload, settings.secret_key, algorithm=ALGORITHM)


def decode_access_token(token: str) -> str | None:
    try:
        payload = jwt.decode(token, settings.secret_key, algorithms=[ALGORITHM])
    except JWTError:
        return None
    return payload.get("sub")
`

const fastapiMetrics = `from fastapi import FastAPI, Response
from prometheus_client import CONTENT_TYPE_LATEST, Counter, generate_latest

REQUESTS = Counter("http_requests_total", "Total HTTP requests", ["method", "path"])


def setup_metrics(app: FastAPI) -> None:
    @app.middleware("http")
    async def count_requests(request, call_next):
        REQUESTS.labels(request.method, request.url.path).inc()
        return await call_next(request)

    @app.get("/metrics")
    async def metrics() -> Response:
        return Response(generate_latest(), media_type=CONTENT_TYPE_LATEST)
`

func fastapiDocs(req Request) string {
	return fmt.Sprintf(`from fastapi import FastAPI
from fastapi.openapi.utils import get_openapi


def custom_openapi(app: FastAPI) -> dict:
    if app.openapi_schema:
        return app.openapi_schema
    schema = get_openapi(
        title="%s API",
        version=app.version,
        description="API documentation for %s",
        routes=app.routes,
    )
    app.openapi_schema = schema
    return schema
`, req.Name, req.Name)
}

const fastapiDockerfile = `FROM python:3.12-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY src ./src

EXPOSE 8000
CMD ["uvicorn", "src.main:app", "--host", "0.0.0.0", "--port", "8000"]
`

func fastapiCompose(req Request, sqla bool) string {
	if sqla {
		return fmt.Sprintf(`services:
  app:
    build: .
    ports:
      - "8000:8000"
    environment:
      DATABASE_URL: postgresql+asyncpg://postgres:postgres@db:5432/%s
    depends_on:
      - db

  db:
    image: postgres:16-alpine
    environment:
      POSTGRES_PASSWORD: postgres
      POSTGRES_DB: %s
    volumes:
      - pgdata:/var/lib/postgresql/data

volumes:
  pgdata:
`, req.Name, req.Name)
	}
	return `services:
  app:
    build: .
    ports:
      - "8000:8000"
`
}

const dockerignorePython = `__pycache__
*.pyc
.venv
.git
.env
`

const fastapiHealthTest = `from fastapi.testclient import TestClient

from src.main import app

client = TestClient(app)


def test_health() -> None:
    response = client.get("/health")
    assert response.status_code == 200
    assert response.json() == {"status": "ok"}
`

func fastapiReadme(req Request) string {
	return fmt.Sprintf(`# %s

A FastAPI service created with flow.

## Development

`+"```bash"+`
python -m venv .venv
source .venv/bin/activate
pip install -r requirements.txt -r requirements-dev.txt
uvicorn src.main:app --reload
`+"```"+`

## Tests

`+"```bash"+`
pytest
`+"```"+`
`, req.Name)
}
