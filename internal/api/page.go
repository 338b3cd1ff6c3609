package api

import (
	"html/template"
	"net/http"
)

// handlePage serves the editor shell: the rendered paper plus the add
// section/item forms, export buttons and the websocket client. The forms
// collect raw field values and post them as-is; all trimming, slug and
// layout rules live server-side.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Snapshot()
	frag, err := s.screen.Render(doc)
	if err != nil {
		s.log.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	data := struct {
		Name  string
		Paper template.HTML
	}{
		Name:  doc.Name,
		Paper: template.HTML(frag),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error("page template failed", "error", err)
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} — Resume</title>
<style>
  body { margin: 0; padding: 24px; background: #e8e8ec; font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; }
  .toolbar { max-width: 794px; margin: 0 auto 16px; display: flex; justify-content: flex-end; gap: 8px; }
  button { font: inherit; font-size: 14px; padding: 8px 14px; border: 1px solid #999; background: #fff; border-radius: 4px; cursor: pointer; }
  button:disabled { opacity: 0.5; cursor: default; }
  .resume-paper { max-width: 794px; min-height: 1000px; margin: 0 auto; background: #fff; padding: 56px 48px; box-shadow: 0 1px 6px rgba(0,0,0,0.25); }
  .resume-name { font-size: 28px; margin: 0 0 6px; }
  .resume-contact { font-size: 13px; margin: 0 0 18px; }
  .section-title { font-size: 15px; border-bottom: 1px solid #1a1a1a; padding-bottom: 3px; margin: 18px 0 10px; }
  .item-paragraph { font-size: 13px; line-height: 1.5; margin: 6px 0; }
  .item-entry { margin: 10px 0; }
  .entry-line { display: flex; justify-content: space-between; font-size: 13px; }
  .entry-bold { font-weight: bold; }
  .entry-italic { font-style: italic; }
  .entry-bullets { margin: 4px 0 0 20px; padding: 0; font-size: 13px; }
  .entry-bullets li { margin: 2px 0; line-height: 1.45; }
  .editor { max-width: 794px; margin: 20px auto; background: #fff; border: 2px dashed #bbb; border-radius: 6px; padding: 16px; font-family: sans-serif; font-size: 14px; }
  .editor h2 { margin-top: 0; font-size: 16px; }
  .editor label { display: block; margin: 8px 0 2px; font-size: 12px; color: #444; }
  .editor input, .editor textarea, .editor select { width: 100%; box-sizing: border-box; font: inherit; padding: 6px; border: 1px solid #ccc; border-radius: 3px; }
  .editor .row { display: flex; gap: 12px; }
  .editor .row > div { flex: 1; }
  #toast { position: fixed; right: 20px; bottom: 20px; display: none; padding: 10px 16px; border-radius: 4px; color: #fff; font-family: sans-serif; font-size: 14px; }
  #toast.ok { background: #2d7d46; }
  #toast.err { background: #b33a3a; }
</style>
</head>
<body>
<div class="toolbar">
  <button id="export-pdf">Export PDF</button>
  <button id="export-docx">Export DOCX</button>
</div>

<div id="paper-host">{{.Paper}}</div>

<div class="editor">
  <h2>Add section</h2>
  <label>Section title *</label>
  <input id="sec-title" placeholder="e.g. Certifications">
  <div class="row">
    <div><label>Bold title (left)</label><input id="sec-bold-title"></div>
    <div><label>Bold date (right)</label><input id="sec-bold-date"></div>
  </div>
  <div class="row">
    <div><label>Secondary title (left)</label><input id="sec-sec-title"></div>
    <div><label>Secondary text (right)</label><input id="sec-sec-text"></div>
  </div>
  <label>Bullet points (one per line)</label>
  <textarea id="sec-bullets" rows="3"></textarea>
  <label>Or paragraph (replaces the fields above)</label>
  <textarea id="sec-paragraph" rows="3"></textarea>
  <p><button id="sec-save">Save section</button></p>
</div>

<div class="editor">
  <h2>Add item</h2>
  <label>Section</label>
  <select id="item-section"></select>
  <label>Kind</label>
  <select id="item-kind">
    <option value="entry">entry</option>
    <option value="paragraph">paragraph</option>
  </select>
  <div id="item-entry-fields">
    <div class="row">
      <div><label>Bold title (left)</label><input id="item-bold-title"></div>
      <div><label>Bold date (right)</label><input id="item-bold-date"></div>
    </div>
    <div class="row">
      <div><label>Secondary title (left)</label><input id="item-sec-title"></div>
      <div><label>Secondary text (right)</label><input id="item-sec-text"></div>
    </div>
    <label>Bullet points (one per line)</label>
    <textarea id="item-bullets" rows="3"></textarea>
  </div>
  <div id="item-paragraph-field" style="display:none">
    <label>Paragraph</label>
    <textarea id="item-paragraph" rows="3"></textarea>
  </div>
  <p><button id="item-save">Save item</button></p>
</div>

<div id="toast"></div>

<script>
const $ = (id) => document.getElementById(id);

function toast(msg, ok) {
  const el = $("toast");
  el.textContent = msg;
  el.className = ok ? "ok" : "err";
  el.style.display = "block";
  setTimeout(() => { el.style.display = "none"; }, 3000);
}

function refreshSectionOptions() {
  fetch("/api/resume").then(r => r.json()).then(doc => {
    const sel = $("item-section");
    sel.innerHTML = "";
    for (const s of doc.sections || []) {
      const opt = document.createElement("option");
      opt.value = s.id;
      opt.textContent = s.title;
      sel.appendChild(opt);
    }
  });
}

function splitLines(text) {
  return text.split("\n");
}

function postJSON(url, payload) {
  return fetch(url, {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(payload),
  }).then(async r => {
    if (!r.ok) {
      const body = await r.json().catch(() => ({}));
      throw new Error(body.error || ("request failed: " + r.status));
    }
    return r.json();
  });
}

$("sec-save").addEventListener("click", () => {
  const paragraph = $("sec-paragraph").value;
  const item = paragraph.trim()
    ? { kind: "paragraph", content: paragraph }
    : {
        kind: "entry",
        boldTitle: $("sec-bold-title").value,
        boldDate: $("sec-bold-date").value,
        secondaryTitle: $("sec-sec-title").value,
        secondaryText: $("sec-sec-text").value,
        bullets: splitLines($("sec-bullets").value),
      };
  postJSON("/api/sections", { title: $("sec-title").value, item })
    .then(res => {
      toast('Section "' + res.title + '" added!', true);
      refreshSectionOptions();
    })
    .catch(err => toast(err.message, false));
});

$("item-kind").addEventListener("change", () => {
  const isPara = $("item-kind").value === "paragraph";
  $("item-entry-fields").style.display = isPara ? "none" : "";
  $("item-paragraph-field").style.display = isPara ? "" : "none";
});

$("item-save").addEventListener("click", () => {
  const kind = $("item-kind").value;
  const item = kind === "paragraph"
    ? { kind: "paragraph", content: $("item-paragraph").value }
    : {
        kind: "entry",
        boldTitle: $("item-bold-title").value,
        boldDate: $("item-bold-date").value,
        secondaryTitle: $("item-sec-title").value,
        secondaryText: $("item-sec-text").value,
        bullets: splitLines($("item-bullets").value),
      };
  postJSON("/api/sections/" + $("item-section").value + "/items", { item })
    .then(() => toast("Item added!", true))
    .catch(err => toast(err.message, false));
});

function wireExport(id, format) {
  $(id).addEventListener("click", () => {
    const btn = $(id);
    btn.disabled = true;
    fetch("/export/" + format)
      .then(async r => {
        if (!r.ok) {
          const body = await r.json().catch(() => ({}));
          throw new Error(body.error || (format.toUpperCase() + " export failed"));
        }
        const disp = r.headers.get("Content-Disposition") || "";
        const m = disp.match(/filename="?([^";]+)"?/);
        const name = m ? m[1] : "resume." + format;
        return r.blob().then(blob => ({ blob, name }));
      })
      .then(({ blob, name }) => {
        const a = document.createElement("a");
        a.href = URL.createObjectURL(blob);
        a.download = name;
        a.click();
        URL.revokeObjectURL(a.href);
        toast(format.toUpperCase() + " exported successfully!", true);
      })
      .catch(err => toast(err.message, false))
      .finally(() => { btn.disabled = false; });
  });
}
wireExport("export-pdf", "pdf");
wireExport("export-docx", "docx");

function connectWS() {
  const proto = location.protocol === "https:" ? "wss" : "ws";
  const ws = new WebSocket(proto + "://" + location.host + "/ws");
  ws.onmessage = (ev) => { $("paper-host").innerHTML = ev.data; };
  ws.onclose = () => setTimeout(connectWS, 2000);
}
connectWS();
refreshSectionOptions();
</script>
</body>
</html>
`))
