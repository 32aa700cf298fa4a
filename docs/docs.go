// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["System"],
                "summary": "헬스 체크",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/profiles": {
            "get": {
                "description": "덱과 같은 규칙으로 새 프로필 목록을 생성합니다. 저장되지 않습니다.",
                "produces": ["application/json"],
                "tags": ["Profiles"],
                "summary": "합성 프로필 생성",
                "parameters": [
                    {"type": "integer", "description": "생성할 프로필 수 (1..100, 기본 12)", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfilesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/sessions": {
            "post": {
                "description": "새 덱을 생성하고 세션 토큰을 발급합니다. 클라이언트 IP별 요청 수 제한이 있습니다.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "덱 세션 생성",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CreateSessionResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/sessions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "덱 세션 상태 조회",
                "parameters": [
                    {"type": "string", "description": "세션 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/deck.Snapshot"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Session"],
                "summary": "덱 세션 종료",
                "parameters": [
                    {"type": "string", "description": "세션 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/ws/deck": {
            "get": {
                "description": "토큰의 세션에 WebSocket을 연결합니다. 서버가 렌더 명령을 보내고 클라이언트는 포인터/버튼/트랜지션 이벤트를 보냅니다.<br>\n**참고: 이것은 표준 HTTP API가 아닙니다.**\n클라이언트는 ` + "`" + `ws://` + "`" + ` 또는 ` + "`" + `wss://` + "`" + ` 스킴을 사용하여 연결해야 하며, 인증은 **쿼리 파라미터('token')**로 수행됩니다.",
                "tags": ["WebSocket (Deck)"],
                "summary": "덱 WebSocket 연결",
                "parameters": [
                    {"type": "string", "description": "세션 생성 시 발급받은 토큰", "name": "token", "in": "query", "required": true}
                ],
                "responses": {
                    "101": {"description": "101 Switching Protocols", "schema": {"type": "string"}},
                    "401": {"description": "토큰 누락 또는 유효하지 않은 토큰", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "세션 없음", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "deck.Snapshot": {
            "type": "object",
            "properties": {
                "dismissing": {"type": "boolean"},
                "remaining": {"type": "integer"},
                "session_id": {"type": "string"},
                "tally": {"type": "object", "additionalProperties": {"type": "integer"}},
                "top": {"$ref": "#/definitions/models.Profile"}
            }
        },
        "handler.CreateSessionResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "session_id": {"type": "string", "example": "3f0c9a4e-8d5b-4c1e-9a57-0b3f1d2e6c7a"},
                "token": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "에러 원인 및 설명"}
            }
        },
        "handler.ProfilesResponse": {
            "type": "object",
            "properties": {
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/models.Profile"}}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "example": 27},
                "bio": {"type": "string", "example": "Weekend hikes and weekday lattes."},
                "city": {"type": "string", "example": "Brooklyn"},
                "id": {"type": "string", "example": "p_0_mgq3x1a2_1"},
                "img": {"type": "string"},
                "imgs": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string", "example": "Riley"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string", "example": "Product Designer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SwipeDeck API",
	Description:      "스와이프 덱 세션 서버. 제스처 상태 머신은 서버에서 동작하고 브라우저는 렌더링만 담당합니다.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
